package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/workoflow/hrms-api/internal/middleware"
	"github.com/workoflow/hrms-api/internal/services"
	"github.com/workoflow/hrms-api/pkg/utils"
)

type LogHandler struct {
	audit *services.AuditService
}

func NewLogHandler(audit *services.AuditService) *LogHandler {
	return &LogHandler{
		audit: audit,
	}
}

// List returns the organization's most recent audit entries, newest first.
func (h *LogHandler) List(c *gin.Context) {
	orgID, _ := middleware.GetOrganizationID(c)

	logs, err := h.audit.ListByOrganization(c.Request.Context(), orgID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.OK(c, logs)
}
