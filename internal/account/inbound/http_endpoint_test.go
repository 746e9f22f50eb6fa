package inbound

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shandysiswandi/secureprop/internal/account/usecase"
	"github.com/shandysiswandi/secureprop/internal/pkg/goerror"
	"github.com/shandysiswandi/secureprop/internal/pkg/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsecase struct {
	registerIn usecase.RegisterInput
	changeIn   usecase.PasswordChangeInput
	clearIn    usecase.PasswordClearInput
	err        error
}

func (s *stubUsecase) Register(_ context.Context, in usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	s.registerIn = in
	if s.err != nil {
		return nil, s.err
	}
	return &usecase.RegisterOutput{ID: 1234567890123456789}, nil
}

func (s *stubUsecase) Login(_ context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &usecase.LoginOutput{ID: 7, Email: in.Email, FullName: "David"}, nil
}

func (s *stubUsecase) PasswordChange(_ context.Context, in usecase.PasswordChangeInput) error {
	s.changeIn = in
	return s.err
}

func (s *stubUsecase) PasswordClear(_ context.Context, in usecase.PasswordClearInput) error {
	s.clearIn = in
	return s.err
}

func setup(t *testing.T, err error) (*router.Router, *stubUsecase) {
	t.Helper()

	ro := router.NewRouter(router.Config{})
	stub := &stubUsecase{err: err}
	RegisterHTTPEndpoint(ro, stub, "admin-token")
	return ro, stub
}

func do(ro http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	ro.ServeHTTP(rec, req)
	return rec
}

func TestRegister(t *testing.T) {
	// Arrange
	ro, stub := setup(t, nil)

	// Act
	rec := do(ro, http.MethodPost, "/api/v1/accounts/register",
		`{"email":"a@b.test","full_name":"A","password":"s3cret","password_confirmation":"s3cret"}`)

	// Assert
	require.Equal(t, http.StatusCreated, rec.Code)
	var body struct {
		Message string           `json:"message"`
		Data    RegisterResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Registration successful.", body.Message)
	assert.Equal(t, int64(1234567890123456789), body.Data.ID)
	assert.Contains(t, rec.Body.String(), `"id":"1234567890123456789"`)
	require.NotNil(t, stub.registerIn.PasswordConfirmation)
	assert.Equal(t, "s3cret", *stub.registerIn.PasswordConfirmation)
}

func TestRegister_WithoutConfirmation(t *testing.T) {
	ro, stub := setup(t, nil)

	rec := do(ro, http.MethodPost, "/api/v1/accounts/register", `{"email":"a@b.test","full_name":"A","password":"s3cret"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Nil(t, stub.registerIn.PasswordConfirmation)
}

func TestRegister_Errors(t *testing.T) {
	ro, _ := setup(t, goerror.NewInvalidFields(map[string]string{"password": "can't be blank"}))

	rec := do(ro, http.MethodPost, "/api/v1/accounts/register", `{"email":"a@b.test","full_name":"A","password":""}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"message":"Validation error","error":{"password":"can't be blank"}}`, rec.Body.String())

	rec = do(ro, http.MethodPost, "/api/v1/accounts/register", `{"email":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin(t *testing.T) {
	ro, _ := setup(t, nil)

	rec := do(ro, http.MethodPost, "/api/v1/accounts/login", `{"email":"a@b.test","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"a@b.test"`)

	ro, _ = setup(t, goerror.NewBusiness("invalid email or password", goerror.CodeUnauthorized))
	rec = do(ro, http.MethodPost, "/api/v1/accounts/login", `{"email":"a@b.test","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPasswordChange(t *testing.T) {
	ro, stub := setup(t, nil)

	rec := do(ro, http.MethodPost, "/api/v1/accounts/9/password", `{"current_password":"old","new_password":"new"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(9), stub.changeIn.ID)
	assert.Equal(t, "new", stub.changeIn.NewPassword)
	assert.Nil(t, stub.changeIn.NewPasswordConfirmation)

	rec = do(ro, http.MethodPost, "/api/v1/accounts/abc/password", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPasswordClear(t *testing.T) {
	ro, stub := setup(t, nil)

	rec := do(ro, http.MethodDelete, "/api/v1/accounts/9/password", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, stub.clearIn.ID)

	rec = do(ro, http.MethodDelete, "/api/v1/accounts/9/password", "", router.HeaderAdminToken, "admin-token")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(9), stub.clearIn.ID)

	ro, _ = setup(t, goerror.NewBusiness("account not found", goerror.CodeNotFound))
	rec = do(ro, http.MethodDelete, "/api/v1/accounts/9/password", "", router.HeaderAdminToken, "admin-token")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
