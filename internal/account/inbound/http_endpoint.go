package inbound

import (
	"github.com/shandysiswandi/secureprop/internal/account/usecase"
	"github.com/shandysiswandi/secureprop/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for account credential workflows.
type HTTPEndpoint struct {
	uc uc
}

// Register creates an account with a password.
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Register(r.Context(), usecase.RegisterInput{
		Email:                req.Email,
		FullName:             req.FullName,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		return nil, err
	}

	return RegisterResponse{ID: resp.ID}, nil
}

// Login checks the password of the account registered under email.
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return LoginResponse{
		ID:       resp.ID,
		Email:    resp.Email,
		FullName: resp.FullName,
	}, nil
}

// PasswordChange replaces the password after checking the current one.
func (h *HTTPEndpoint) PasswordChange(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req PasswordChangeRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.PasswordChange(r.Context(), usecase.PasswordChangeInput{
		ID:                      id,
		CurrentPassword:         req.CurrentPassword,
		NewPassword:             req.NewPassword,
		NewPasswordConfirmation: req.NewPasswordConfirmation,
	}); err != nil {
		return nil, err
	}

	return nil, nil
}

// PasswordClear removes the stored password digest.
func (h *HTTPEndpoint) PasswordClear(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.PasswordClear(r.Context(), usecase.PasswordClearInput{ID: id}); err != nil {
		return nil, err
	}

	return nil, nil
}
