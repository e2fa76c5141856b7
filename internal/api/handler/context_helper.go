package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zainaaazz/FullStackWebApplication/internal/api/middleware"
	"github.com/zainaaazz/FullStackWebApplication/internal/service"
	pkgerrors "github.com/zainaaazz/FullStackWebApplication/pkg/errors"
	"github.com/zainaaazz/FullStackWebApplication/pkg/response"
)

const (
	msgInvalidID   = "Invalid ID"
	msgInvalidBody = "Invalid request body"
	msgTooLarge    = "Request body too large"
)

// MustGetUserID reads the principal's UserID set by JWTAuth.
// On false a 401 has been written and the caller returns.
func MustGetUserID(c *gin.Context) (int, bool) {
	v, exists := c.Get(middleware.CtxUserID)
	if !exists {
		response.Unauthorized(c, "Unauthorized")
		return 0, false
	}
	id, ok := v.(int)
	if !ok || id == 0 {
		response.Unauthorized(c, "Unauthorized")
		return 0, false
	}
	return id, true
}

// mustGetCaller the principal as the services take it
func mustGetCaller(c *gin.Context) (service.Caller, bool) {
	id, ok := MustGetUserID(c)
	if !ok {
		return service.Caller{}, false
	}
	return service.Caller{UserID: id, Role: c.GetString(middleware.CtxRole)}, true
}

// parseID reads a positive integer path parameter; writes 400 otherwise
func parseID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		response.BadRequest(c, msgInvalidID)
		return 0, false
	}
	return id, true
}

// bindJSON binds the body into req; writes 400 (or 413 past the body limit) otherwise
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		if isTooLarge(err) {
			response.Error(c, http.StatusRequestEntityTooLarge, msgTooLarge)
			return false
		}
		response.BadRequest(c, msgInvalidBody)
		return false
	}
	return true
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// writeError maps a service error to its status and client message.
// Downstream causes go to c.Errors for the request logger.
func writeError(c *gin.Context, err error) {
	var e *pkgerrors.Error
	if !errors.As(err, &e) {
		_ = c.Error(err)
		response.InternalError(c)
		return
	}
	if e.Kind == pkgerrors.KindDownstream || e.Kind == pkgerrors.KindUnknown {
		_ = c.Error(err)
	}
	if e.Kind == pkgerrors.KindUnknown {
		response.InternalError(c)
		return
	}
	response.Error(c, e.Kind.HTTPStatus(), e.Message)
}
