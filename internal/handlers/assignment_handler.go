package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/workoflow/hrms-api/internal/middleware"
	"github.com/workoflow/hrms-api/internal/services"
	"github.com/workoflow/hrms-api/pkg/utils"
)

type AssignmentHandler struct {
	directory *services.DirectoryService
}

func NewAssignmentHandler(directory *services.DirectoryService) *AssignmentHandler {
	return &AssignmentHandler{
		directory: directory,
	}
}

// AssignmentRequest identifies an employee-team pair. Used by both assign
// and unassign; the unassign endpoint takes it as a DELETE body.
type AssignmentRequest struct {
	EmployeeID uint `json:"employeeId" binding:"required"`
	TeamID     uint `json:"teamId" binding:"required"`
}

func (h *AssignmentHandler) List(c *gin.Context) {
	orgID, _ := middleware.GetOrganizationID(c)

	assignments, err := h.directory.ListAssignments(c.Request.Context(), orgID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.OK(c, assignments)
}

func (h *AssignmentHandler) Assign(c *gin.Context) {
	orgID, _ := middleware.GetOrganizationID(c)
	userID, _ := middleware.GetUserID(c)

	var req AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, "employeeId and teamId are required")
		return
	}

	if err := h.directory.AssignTeam(c.Request.Context(), orgID, userID, req.EmployeeID, req.TeamID); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Created(c, gin.H{"employeeId": req.EmployeeID, "teamId": req.TeamID})
}

func (h *AssignmentHandler) Unassign(c *gin.Context) {
	orgID, _ := middleware.GetOrganizationID(c)
	userID, _ := middleware.GetUserID(c)

	var req AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, "employeeId and teamId are required")
		return
	}

	if err := h.directory.UnassignTeam(c.Request.Context(), orgID, userID, req.EmployeeID, req.TeamID); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.OKWithMessage(c, "Assignment removed")
}
