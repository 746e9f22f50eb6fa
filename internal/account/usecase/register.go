package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/secureprop/internal/account/entity"
	"github.com/shandysiswandi/secureprop/internal/pkg/goerror"
)

type RegisterInput struct {
	Email                string `validate:"required,email,max=255"`
	FullName             string `validate:"required,max=100"`
	Password             string
	PasswordConfirmation *string
}

type RegisterOutput struct {
	ID int64
}

func (s *Usecase) Register(ctx context.Context, in RegisterInput) (*RegisterOutput, error) {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.FullName = strings.TrimSpace(in.FullName)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	acc := entity.NewAccount(s.password)
	acc.Email = in.Email
	acc.FullName = in.FullName

	pwd := acc.Password()
	setErr := pwd.Set(in.Password)
	pwd.SetConfirmation(in.PasswordConfirmation)

	if err := acc.Validate(); err != nil {
		return nil, invalidSecret(err, nil)
	}
	if setErr != nil {
		slog.WarnContext(ctx, "failed to hash password on register", "email", in.Email, "error", setErr)
		return nil, goerror.NewInvalidInput(nil, entity.PropPassword, "is invalid")
	}

	now := s.clock.Now()
	acc.ID = s.uid.Generate()
	acc.CreatedAt = now
	acc.UpdatedAt = now

	err := s.repoDB.CreateAccount(ctx, acc.Row())
	if errors.Is(err, goerror.ErrConflict) {
		slog.WarnContext(ctx, "email already registered", "email", in.Email)
		return nil, goerror.NewBusiness("email already registered", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create account", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	pwd.MarkPersisted()
	pwd.Reset()

	return &RegisterOutput{ID: acc.ID}, nil
}
