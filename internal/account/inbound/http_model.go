package inbound

import "net/http"

type RegisterRequest struct {
	Email                string  `json:"email"`
	FullName             string  `json:"full_name"`
	Password             string  `json:"password"`
	PasswordConfirmation *string `json:"password_confirmation"`
}

type RegisterResponse struct {
	ID int64 `json:"id,string"`
}

func (RegisterResponse) StatusCode() int {
	return http.StatusCreated
}

func (RegisterResponse) Message() string {
	return "Registration successful."
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	ID       int64  `json:"id,string"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

type PasswordChangeRequest struct {
	CurrentPassword         string  `json:"current_password"`
	NewPassword             string  `json:"new_password"`
	NewPasswordConfirmation *string `json:"new_password_confirmation"`
}
