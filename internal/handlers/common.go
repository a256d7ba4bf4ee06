package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/workoflow/hrms-api/internal/services"
	"github.com/workoflow/hrms-api/pkg/utils"
)

// respondServiceError maps the service error taxonomy onto HTTP responses.
// Anything unmapped is a store failure and returns 500 without leaking the
// underlying error text.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.Fail(c, http.StatusNotFound, utils.CodeNotFound, "Record not found")
	case errors.Is(err, services.ErrConflict):
		utils.Fail(c, http.StatusConflict, utils.CodeConflict, "Record already exists")
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.Fail(c, http.StatusUnauthorized, utils.CodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, services.ErrInvalidToken):
		utils.Unauthenticated(c, "Invalid or missing token")
	default:
		utils.Fail(c, http.StatusInternalServerError, utils.CodeStoreError, "Internal server error")
	}
}

// parseIDParam reads a positive integer path parameter. A non-numeric or
// non-positive value is a validation error, not a missing record.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.ValidationFailed(c, "Invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}
