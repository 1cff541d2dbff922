package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/go-social-network/internal/application"
	"github.com/oksasatya/go-social-network/internal/domain/entity"
	"github.com/oksasatya/go-social-network/internal/interface/middleware"
	"github.com/oksasatya/go-social-network/pkg/helpers"
	"github.com/oksasatya/go-social-network/pkg/response"
	"github.com/oksasatya/go-social-network/pkg/validation"
)

const msgServerError = "Server Error"

// statusFor maps the application error kinds to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, app.ErrValidation),
		errors.Is(err, app.ErrAlreadyLiked),
		errors.Is(err, app.ErrNotLiked):
		return http.StatusBadRequest
	case errors.Is(err, app.ErrUnauthenticated),
		errors.Is(err, app.ErrInvalidToken),
		errors.Is(err, app.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, app.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, app.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, app.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as a failure body. Unexpected errors are logged and hidden
// behind a generic message.
func fail(c *gin.Context, logger *logrus.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		helpers.LogError(logger, "request failed", err, logrus.Fields{
			"method":     c.Request.Method,
			"route":      c.FullPath(),
			"request_id": c.GetString(middleware.RequestIDKey),
		})
		response.Error(c, status, msgServerError)
		return
	}
	response.Error(c, status, err.Error())
}

// bind decodes the JSON body into obj and writes a 400 with one entry per
// failing field when it does not validate.
func bind(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		response.Errors(c, http.StatusBadRequest, validation.ToErrors(err, obj)...)
		return false
	}
	return true
}

// identity returns the caller attached by the Auth Gate.
func identity(c *gin.Context) (entity.Identity, bool) {
	id, ok := middleware.IdentityFrom(c.Request.Context())
	if !ok {
		response.Error(c, http.StatusUnauthorized, app.ErrNoToken.Error())
	}
	return id, ok
}

func requestMeta(c *gin.Context) app.RequestMeta {
	return app.RequestMeta{IP: middleware.ClientIP(c), UserAgent: c.Request.UserAgent()}
}
