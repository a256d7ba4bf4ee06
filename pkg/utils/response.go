package utils

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope every endpoint returns. Errors carry a
// machine-readable Code alongside the human-readable Message.
type APIResponse struct {
	Success   bool        `json:"success"`
	Code      string      `json:"code,omitempty"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// Error codes used across the API.
const (
	CodeValidationError    = "validation_error"
	CodeUnauthenticated    = "unauthenticated"
	CodeInvalidCredentials = "invalid_credentials"
	CodeNotFound           = "not_found"
	CodeConflict           = "conflict"
	CodeStoreError         = "store_error"
)

// Success sends a successful JSON response
func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	response := APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	c.JSON(statusCode, response)
}

// OK sends a 200 response with data
func OK(c *gin.Context, data interface{}) {
	Success(c, http.StatusOK, "", data)
}

// OKWithMessage sends a 200 response with a message and no data
func OKWithMessage(c *gin.Context, message string) {
	Success(c, http.StatusOK, message, nil)
}

// Created sends a 201 response with data
func Created(c *gin.Context, data interface{}) {
	Success(c, http.StatusCreated, "", data)
}

// Fail sends an error JSON response with an error code
func Fail(c *gin.Context, statusCode int, code, message string) {
	response := APIResponse{
		Success:   false,
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	c.JSON(statusCode, response)
}

// ValidationFailed sends a 400 validation error response
func ValidationFailed(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, CodeValidationError, message)
}

// Unauthenticated sends a 401 response for missing or invalid credentials
func Unauthenticated(c *gin.Context, message string) {
	Fail(c, http.StatusUnauthorized, CodeUnauthenticated, message)
}
