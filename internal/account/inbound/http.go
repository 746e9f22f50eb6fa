package inbound

import (
	"context"

	"github.com/shandysiswandi/secureprop/internal/account/usecase"
	"github.com/shandysiswandi/secureprop/internal/pkg/router"
)

type uc interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*usecase.RegisterOutput, error)
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
	PasswordChange(ctx context.Context, in usecase.PasswordChangeInput) error
	PasswordClear(ctx context.Context, in usecase.PasswordClearInput) error
}

// RegisterHTTPEndpoint mounts the account routes. adminToken guards the
// password clear endpoint; empty disables it.
func RegisterHTTPEndpoint(r *router.Router, uc uc, adminToken string) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/accounts/register", end.Register)
	r.POST("/api/v1/accounts/login", end.Login)

	r.POST("/api/v1/accounts/:id/password", end.PasswordChange)
	r.DELETE("/api/v1/accounts/:id/password", end.PasswordClear, router.AdminOnly(adminToken))
}
