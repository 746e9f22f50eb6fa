package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/secureprop/internal/pkg/goerror"
)

type PasswordClearInput struct {
	ID int64 `validate:"required,gt=0"`
}

// PasswordClear removes the stored digest so the account can no longer log in
// until a new password is set. Clearing an already cleared account is a no-op.
func (s *Usecase) PasswordClear(ctx context.Context, in PasswordClearInput) error {
	ctx, span := s.startSpan(ctx, "PasswordClear")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	acc, err := s.loadAccount(ctx, in.ID)
	if err != nil {
		return err
	}

	acc.Password().Clear()

	if err := s.storeDigest(ctx, acc); err != nil {
		slog.ErrorContext(ctx, "failed to clear password digest", "account_id", acc.ID, "error", err)
		return goerror.NewServer(err)
	}

	slog.InfoContext(ctx, "password cleared", "account_id", acc.ID)

	return nil
}
