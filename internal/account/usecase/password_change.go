package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/secureprop/internal/pkg/goerror"
	"github.com/shandysiswandi/secureprop/internal/pkg/secureprop"
)

type PasswordChangeInput struct {
	ID                      int64  `validate:"required,gt=0"`
	CurrentPassword         string `validate:"required"`
	NewPassword             string
	NewPasswordConfirmation *string
}

var passwordChangeFields = map[string]string{
	"password":              "new_password",
	"password_confirmation": "new_password_confirmation",
}

func (s *Usecase) PasswordChange(ctx context.Context, in PasswordChangeInput) error {
	ctx, span := s.startSpan(ctx, "PasswordChange")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	acc, err := s.loadAccount(ctx, in.ID)
	if err != nil {
		return err
	}

	acc, ok := secureprop.Authenticate(acc, acc.Password(), in.CurrentPassword)
	if !ok {
		slog.WarnContext(ctx, "current password mismatch", "account_id", in.ID)
		return goerror.NewBusiness("invalid password", goerror.CodeUnauthorized)
	}

	pwd := acc.Password()
	setErr := pwd.Set(in.NewPassword)
	pwd.SetConfirmation(in.NewPasswordConfirmation)

	if err := acc.Validate(); err != nil {
		return invalidSecret(err, passwordChangeFields)
	}
	if setErr != nil {
		slog.WarnContext(ctx, "failed to hash new password", "account_id", acc.ID, "error", setErr)
		return goerror.NewInvalidInput(nil, "new_password", "is invalid")
	}

	if err := s.storeDigest(ctx, acc); err != nil {
		slog.ErrorContext(ctx, "failed to update password digest", "account_id", acc.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
