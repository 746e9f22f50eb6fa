package goerror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	cause := errors.New("db down")
	err := NewServer(cause)

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "db down", err.Error())
	assert.Equal(t, "Internal server error", gerr.Msg())
	assert.Equal(t, TypeServer, gerr.Type())
	assert.Equal(t, http.StatusInternalServerError, gerr.StatusCode())
}

func TestNewBusiness(t *testing.T) {
	err := NewBusiness("invalid credentials", CodeUnauthorized)

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, "invalid credentials", err.Error())
	assert.Equal(t, http.StatusUnauthorized, gerr.StatusCode())
	assert.Equal(t, "ERROR_CODE_UNAUTHORIZED", gerr.Code().String())
	assert.Equal(t, "ERROR_TYPE_BUSINESS", gerr.Type().String())
}

func TestNewInvalidInput(t *testing.T) {
	err := NewInvalidInput(nil, "password", "can't be blank")

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, map[string]string{"password": "can't be blank"}, gerr.Fields())
	assert.Equal(t, http.StatusUnprocessableEntity, gerr.StatusCode())

	err = NewInvalidInput(nil, "dangling")
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, CodeInvalidFormat, gerr.Code())
	assert.Equal(t, http.StatusBadRequest, gerr.StatusCode())

	cause := errors.New("inner")
	err = NewInvalidInput(cause)
	assert.ErrorIs(t, err, cause)
}

func TestNewInvalidFields(t *testing.T) {
	fields := map[string]string{"password_confirmation": "doesn't match Password"}
	err := NewInvalidFields(fields)
	fields["extra"] = "x"

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Len(t, gerr.Fields(), 1)
	assert.Equal(t, "Validation error", err.Error())
}

func TestCodeString_Unknown(t *testing.T) {
	assert.Equal(t, "ERROR_CODE_INTERNAL", Code(99).String())
	assert.Equal(t, "ERROR_TYPE_UNKNOWN", Type(99).String())
	assert.Equal(t, http.StatusInternalServerError, (&Error{code: Code(99)}).StatusCode())
}
