package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/secureprop/internal/account/entity"
	"github.com/shandysiswandi/secureprop/internal/pkg/goerror"
	"github.com/shandysiswandi/secureprop/internal/pkg/secureprop"
)

type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type LoginOutput struct {
	ID       int64
	Email    string
	FullName string
	Rehashed bool
}

func (s *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	row, err := s.repoDB.GetAccountByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "account not found on login", "email", in.Email)
		s.password.CompareDummy(in.Password)
		return nil, goerror.NewBusiness("invalid email or password", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	acc := entity.AccountFromRow(row, s.password)

	ok, err := acc.Password().Compare(in.Password)
	switch {
	case errors.Is(err, secureprop.ErrNoDigest):
		slog.WarnContext(ctx, "account has no password", "account_id", acc.ID)
		s.password.CompareDummy(in.Password)
	case err != nil:
		slog.ErrorContext(ctx, "stored password digest is unreadable", "account_id", acc.ID, "error", err)
		s.password.CompareDummy(in.Password)
	}
	if !ok {
		return nil, goerror.NewBusiness("invalid email or password", goerror.CodeUnauthorized)
	}

	out := &LoginOutput{ID: acc.ID, Email: acc.Email, FullName: acc.FullName}

	if acc.Password().NeedsRehash() {
		out.Rehashed = s.rehash(ctx, acc, in.Password)
	}

	return out, nil
}

// rehash recomputes the digest with the current parameters and stores it in
// the background. It reports whether the write was scheduled.
func (s *Usecase) rehash(ctx context.Context, acc *entity.Account, password string) bool {
	pwd := acc.Password()
	defer pwd.Reset()

	if err := pwd.Set(password); err != nil {
		slog.WarnContext(ctx, "failed to rehash password", "account_id", acc.ID, "error", err)
		return false
	}

	id, digest := acc.ID, pwd.Digest()
	err := s.goroutine.Go(context.WithoutCancel(ctx), "account.rehash", func(ctx context.Context) error {
		if err := s.repoDB.UpdatePasswordDigest(ctx, id, digest); err != nil {
			slog.WarnContext(ctx, "failed to store rehashed password", "account_id", id, "error", err)
			return err
		}
		return nil
	})

	return err == nil
}
