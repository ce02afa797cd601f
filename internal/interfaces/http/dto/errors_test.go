package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus(ErrCodeValidation))
	assert.Equal(t, http.StatusNotFound, GetHTTPStatus(ErrCodeNotFound))
	assert.Equal(t, http.StatusConflict, GetHTTPStatus(ErrCodeAlreadyExists))
	assert.Equal(t, http.StatusConflict, GetHTTPStatus("ALREADY_FRIENDS"))
	assert.Equal(t, http.StatusUnprocessableEntity, GetHTTPStatus("INVALID_STATE"))
	assert.Equal(t, http.StatusUnauthorized, GetHTTPStatus("NO_CREDENTIALS"))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("UPSTREAM_FAILURE"))
	assert.Equal(t, http.StatusRequestEntityTooLarge, GetHTTPStatus(ErrCodeRequestTooLarge))
}

func TestGetHTTPStatus_UnknownCode(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("SOMETHING_ELSE"))
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(ErrCodeNotFound, "Book not found", "req-1")

	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "Book not found", resp.Error.Message)
	assert.Equal(t, "req-1", resp.RequestID)
}
