package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/workoflow/hrms-api/internal/middleware"
	"github.com/workoflow/hrms-api/internal/services"
	"github.com/workoflow/hrms-api/pkg/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	OrgName  string `json:"orgName" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new organization together with its first user and
// returns a token for it.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, "username, password and orgName are required")
		return
	}

	result, err := h.authService.Register(c.Request.Context(), req.Username, req.Password, req.OrgName)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Created(c, result)
}

// Login exchanges a username/password pair for a token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, "username and password are required")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.OK(c, result)
}

// Logout records the logout for the audit trail. The token itself stays
// valid; the client is expected to discard it.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.Unauthenticated(c, "Invalid or missing token")
		return
	}

	h.authService.Logout(userID)
	utils.OKWithMessage(c, "Logged out")
}
