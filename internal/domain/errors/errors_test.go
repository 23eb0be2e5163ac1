package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Constructors(t *testing.T) {
	err := NewAppError(http.StatusBadRequest, CodeValidation, "bad", ErrInvalidInput)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, CodeValidation, err.Code)
	assert.Equal(t, "bad", err.Message)
	assert.Equal(t, ErrInvalidInput.Error(), err.Error())

	notFound := NotFound("missing")
	assert.Equal(t, http.StatusNotFound, notFound.Status)
	assert.Equal(t, CodeNotFound, notFound.Code)
	assert.ErrorIs(t, notFound, ErrNotFound)

	conflict := Conflict("exists")
	assert.Equal(t, http.StatusConflict, conflict.Status)
	assert.Equal(t, CodeConflict, conflict.Code)
	assert.ErrorIs(t, conflict, ErrAlreadyExists)

	badReq := BadRequest("bad request")
	assert.Equal(t, http.StatusBadRequest, badReq.Status)
	assert.Equal(t, CodeValidation, badReq.Code)

	unauth := Unauthorized("unauthorized")
	assert.Equal(t, http.StatusUnauthorized, unauth.Status)
	assert.Equal(t, CodeUnauthorized, unauth.Code)

	forbidden := Forbidden("forbidden")
	assert.Equal(t, http.StatusForbidden, forbidden.Status)
	assert.Equal(t, CodeForbidden, forbidden.Code)

	upstream := UpstreamFailure("provider down", ErrUpstreamFailure)
	assert.Equal(t, http.StatusBadGateway, upstream.Status)
	assert.Equal(t, CodeUpstreamFailure, upstream.Code)
	assert.ErrorIs(t, upstream, ErrUpstreamFailure)

	internal := InternalError(stderrors.New("db down"))
	assert.Equal(t, http.StatusInternalServerError, internal.Status)
	assert.Equal(t, CodeInternal, internal.Code)
	assert.Equal(t, "db down", internal.Error())
}

func TestNewError_WrapsSentinel(t *testing.T) {
	custom := NewError("custom", ErrForbidden)
	assert.Equal(t, ErrForbidden.Error(), custom.Error())
	assert.ErrorIs(t, custom, ErrForbidden)

	var appErr *AppError
	assert.ErrorAs(t, custom, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "custom", appErr.Message)
}

func TestAppError_MessageFallback(t *testing.T) {
	err := &AppError{Status: http.StatusTeapot, Code: "ERR_TEAPOT", Message: "short and stout"}
	assert.Equal(t, "short and stout", err.Error())
	assert.Nil(t, err.Unwrap())
}
