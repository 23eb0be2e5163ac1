package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "aeobro.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response, translating domain errors to their
// HTTP shape. Unknown errors surface as 500 without leaking detail.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = fromSentinel(err)
	}

	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}

// ErrorWithCode sends an error response with an explicit status and code
func ErrorWithCode(c *gin.Context, status int, code string, message string) {
	c.JSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}

func fromSentinel(err error) *domainerrors.AppError {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("resource not found")
	case errors.Is(err, domainerrors.ErrDomainClaimed):
		return domainerrors.NewAppError(http.StatusConflict, domainerrors.CodeConflict,
			"domain is already claimed by another account", err)
	case errors.Is(err, domainerrors.ErrAccountClaimed):
		return domainerrors.NewAppError(http.StatusConflict, domainerrors.CodeConflict,
			"platform account is already linked to another profile", err)
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return domainerrors.Conflict("resource already exists")
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeInvalidCredentials,
			"invalid email or password", err)
	case errors.Is(err, domainerrors.ErrTokenExpired):
		return domainerrors.Unauthorized("token expired")
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return domainerrors.Unauthorized("unauthorized")
	case errors.Is(err, domainerrors.ErrForbidden):
		return domainerrors.Forbidden("forbidden")
	case errors.Is(err, domainerrors.ErrUnsupportedProvider):
		return domainerrors.NewAppError(http.StatusBadRequest, domainerrors.CodeUnsupportedProvider,
			"unsupported platform provider", err)
	case errors.Is(err, domainerrors.ErrUpstreamFailure):
		return domainerrors.UpstreamFailure("upstream platform request failed", err)
	case errors.Is(err, domainerrors.ErrInvalidInput), errors.Is(err, domainerrors.ErrBadRequest):
		return domainerrors.BadRequest(err.Error())
	default:
		return domainerrors.InternalError(err)
	}
}
