package httperr

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itzlabs/clientdesk/internal/errs"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// From maps a typed core error onto a response. Persistence detail is
// logged server-side and the caller only ever sees an opaque message.
func From(c *gin.Context, log *slog.Logger, err error) {
	if ve, ok := errs.AsValidation(err); ok {
		BadRequest(c, "validation_error", ve.Field+" "+ve.Reason)
		return
	}
	if errs.IsNotFound(err) {
		NotFound(c, "not_found", "This record was removed.")
		return
	}
	if errs.IsConflict(err) {
		Conflict(c, "conflict", "This record was changed by someone else. Reload and retry.")
		return
	}
	if pe, ok := errs.AsPersistence(err); ok {
		log.Error("storage failure", "op", pe.Op, "err", pe.Err)
		Internal(c, "storage_error", "Something went wrong. Please try again.")
		return
	}

	log.Error("unexpected error", "err", err)
	Internal(c, "internal_error", "Something went wrong. Please try again.")
}
