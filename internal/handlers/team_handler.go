package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/workoflow/hrms-api/internal/middleware"
	"github.com/workoflow/hrms-api/internal/services"
	"github.com/workoflow/hrms-api/pkg/utils"
)

type TeamHandler struct {
	directory *services.DirectoryService
}

func NewTeamHandler(directory *services.DirectoryService) *TeamHandler {
	return &TeamHandler{
		directory: directory,
	}
}

type TeamRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *TeamHandler) List(c *gin.Context) {
	orgID, _ := middleware.GetOrganizationID(c)

	teams, err := h.directory.ListTeams(c.Request.Context(), orgID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.OK(c, teams)
}

func (h *TeamHandler) Get(c *gin.Context) {
	orgID, _ := middleware.GetOrganizationID(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	team, err := h.directory.GetTeam(c.Request.Context(), orgID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.OK(c, team)
}

func (h *TeamHandler) Create(c *gin.Context) {
	orgID, _ := middleware.GetOrganizationID(c)
	userID, _ := middleware.GetUserID(c)

	var req TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, "name is required")
		return
	}

	team, err := h.directory.CreateTeam(c.Request.Context(), orgID, userID, strings.TrimSpace(req.Name))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Created(c, team)
}

func (h *TeamHandler) Update(c *gin.Context) {
	orgID, _ := middleware.GetOrganizationID(c)
	userID, _ := middleware.GetUserID(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, "name is required")
		return
	}

	if err := h.directory.UpdateTeam(c.Request.Context(), orgID, userID, id, strings.TrimSpace(req.Name)); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.OKWithMessage(c, "Team updated")
}

func (h *TeamHandler) Delete(c *gin.Context) {
	orgID, _ := middleware.GetOrganizationID(c)
	userID, _ := middleware.GetUserID(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.directory.DeleteTeam(c.Request.Context(), orgID, userID, id); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.OKWithMessage(c, "Team deleted")
}
