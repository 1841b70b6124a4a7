package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, GetHTTPStatus(ErrCodeNotFound))
	assert.Equal(t, http.StatusConflict, GetHTTPStatus(ErrCodeAlreadyExists))
	assert.Equal(t, http.StatusUnprocessableEntity, GetHTTPStatus(ErrCodeInsufficientStock))
	assert.Equal(t, http.StatusUnauthorized, GetHTTPStatus(ErrCodeUnauthorized))
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus(ErrCodeBadRequest))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("ERR_NO_SUCH_CODE"))
}

func TestNormalizeErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode("NOT_FOUND"))
	assert.Equal(t, ErrCodeInsufficientStock, NormalizeErrorCode("INSUFFICIENT_STOCK"))
	assert.Equal(t, ErrCodeAlreadyExists, NormalizeErrorCode("DUPLICATE_CODE"))
	// Domain validation codes collapse into the generic business rule bucket
	assert.Equal(t, ErrCodeBusinessRule, NormalizeErrorCode("INVALID_QUANTITY"))
}

func TestErrorResponseShape(t *testing.T) {
	resp := NewErrorResponseWithRequestID(ErrCodeNotFound, "Invoice not found", "req-1")
	assert.False(t, resp.Success)
	assert.Nil(t, resp.Data)
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "req-1", resp.Error.RequestID)

	ok := NewSuccessResponse("data")
	assert.True(t, ok.Success)
	assert.Nil(t, ok.Error)
}
