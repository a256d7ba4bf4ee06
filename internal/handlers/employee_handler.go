package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/workoflow/hrms-api/internal/middleware"
	"github.com/workoflow/hrms-api/internal/services"
	"github.com/workoflow/hrms-api/pkg/utils"
)

type EmployeeHandler struct {
	directory *services.DirectoryService
}

func NewEmployeeHandler(directory *services.DirectoryService) *EmployeeHandler {
	return &EmployeeHandler{
		directory: directory,
	}
}

type EmployeeRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

func (h *EmployeeHandler) List(c *gin.Context) {
	orgID, _ := middleware.GetOrganizationID(c)

	employees, err := h.directory.ListEmployees(c.Request.Context(), orgID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.OK(c, employees)
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	orgID, _ := middleware.GetOrganizationID(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	employee, err := h.directory.GetEmployee(c.Request.Context(), orgID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.OK(c, employee)
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	orgID, _ := middleware.GetOrganizationID(c)
	userID, _ := middleware.GetUserID(c)

	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, "name and email are required")
		return
	}

	email := strings.TrimSpace(req.Email)
	if !utils.ValidateEmail(email) {
		utils.ValidationFailed(c, "Invalid email address")
		return
	}

	employee, err := h.directory.CreateEmployee(c.Request.Context(), orgID, userID, strings.TrimSpace(req.Name), email)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Created(c, employee)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	orgID, _ := middleware.GetOrganizationID(c)
	userID, _ := middleware.GetUserID(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, "name and email are required")
		return
	}

	email := strings.TrimSpace(req.Email)
	if !utils.ValidateEmail(email) {
		utils.ValidationFailed(c, "Invalid email address")
		return
	}

	if err := h.directory.UpdateEmployee(c.Request.Context(), orgID, userID, id, strings.TrimSpace(req.Name), email); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.OKWithMessage(c, "Employee updated")
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	orgID, _ := middleware.GetOrganizationID(c)
	userID, _ := middleware.GetUserID(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.directory.DeleteEmployee(c.Request.Context(), orgID, userID, id); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.OKWithMessage(c, "Employee deleted")
}
