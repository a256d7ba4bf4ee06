package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/workoflow/hrms-api/internal/database"
	"github.com/workoflow/hrms-api/internal/handlers"
	"github.com/workoflow/hrms-api/internal/middleware"
	"github.com/workoflow/hrms-api/internal/services"
)

const testJWTSecret = "test-jwt-secret-key-here-64-chars-long-for-testing-purposes"

// testApp is a fully wired API instance backed by in-memory SQLite. The
// route table mirrors the server entrypoint.
type testApp struct {
	router *gin.Engine
	db     database.Database
	audit  *services.AuditService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, database.Migrate(gormDB))
	db := database.NewGormAdapter(gormDB)

	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	jwtService := services.NewJWTService(testJWTSecret, time.Hour)
	auditService := services.NewAuditService(db, quiet)
	authService := services.NewAuthService(db, jwtService, auditService, bcrypt.MinCost)
	directoryService := services.NewDirectoryService(db, auditService)

	authHandler := handlers.NewAuthHandler(authService)
	employeeHandler := handlers.NewEmployeeHandler(directoryService)
	teamHandler := handlers.NewTeamHandler(directoryService)
	assignmentHandler := handlers.NewAssignmentHandler(directoryService)
	logHandler := handlers.NewLogHandler(auditService)
	healthHandler := handlers.NewHealthHandler(db)

	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Readiness)
	router.GET("/live", healthHandler.Liveness)

	api := router.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authMiddleware.AuthRequired(), authHandler.Logout)

	protected := api.Group("/")
	protected.Use(authMiddleware.AuthRequired())
	{
		protected.GET("/employees", employeeHandler.List)
		protected.POST("/employees", employeeHandler.Create)
		protected.GET("/employees/:id", employeeHandler.Get)
		protected.PUT("/employees/:id", employeeHandler.Update)
		protected.DELETE("/employees/:id", employeeHandler.Delete)

		protected.GET("/teams", teamHandler.List)
		protected.POST("/teams", teamHandler.Create)
		protected.GET("/teams/:id", teamHandler.Get)
		protected.PUT("/teams/:id", teamHandler.Update)
		protected.DELETE("/teams/:id", teamHandler.Delete)

		protected.GET("/assignments", assignmentHandler.List)
		protected.POST("/assignments", assignmentHandler.Assign)
		protected.DELETE("/assignments", assignmentHandler.Unassign)

		protected.GET("/logs", logHandler.List)
	}

	return &testApp{
		router: router,
		db:     db,
		audit:  auditService,
	}
}

// request performs one in-process HTTP request. An empty token skips the
// Authorization header.
func (a *testApp) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the envelope's data field into out.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	var envelope struct {
		Success bool            `json:"success"`
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.Success, "expected a success envelope, got code=%s message=%s", envelope.Code, envelope.Message)
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

// errorCode extracts the machine-readable code from an error envelope.
func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var envelope struct {
		Success bool   `json:"success"`
		Code    string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.False(t, envelope.Success)
	return envelope.Code
}

type authPayload struct {
	Token string `json:"token"`
	User  struct {
		ID             uint   `json:"id"`
		Username       string `json:"username"`
		OrganizationID uint   `json:"organization_id"`
	} `json:"user"`
}

// registerOrg registers a fresh organization and returns its token and user.
func (a *testApp) registerOrg(t *testing.T, username, password, orgName string) authPayload {
	t.Helper()

	w := a.request(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": username,
		"password": password,
		"orgName":  orgName,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var payload authPayload
	decodeData(t, w, &payload)
	return payload
}
