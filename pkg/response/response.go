package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody error envelope read by the portal and mobile app
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody success envelope for mutations
type MessageBody struct {
	Message string `json:"message"`
	ID      *int   `json:"id,omitempty"`
}

// ── success ──

// OK 200 with the payload written as-is
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Message 200 {message}
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageBody{Message: message})
}

// Created 201 {message, id}
func Created(c *gin.Context, message string, id int) {
	c.JSON(http.StatusCreated, MessageBody{Message: message, ID: &id})
}

// ── errors ──

// Error writes {error} with the given status
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, ErrorBody{Error: message})
}

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden 403
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError 500
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}
