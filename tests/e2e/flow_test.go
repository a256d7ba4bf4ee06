package e2e_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type employeePayload struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type teamPayload struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type assignmentPayload struct {
	EmployeeID   uint   `json:"emp_id"`
	EmployeeName string `json:"emp_name"`
	Email        string `json:"email"`
	TeamID       uint   `json:"team_id"`
	TeamName     string `json:"team_name"`
}

type logPayload struct {
	ID        uint      `json:"id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user"`
}

// TestFullLifecycle walks one organization through the whole API surface:
// registration, directory management, assignments, the audit trail, logout.
func TestFullLifecycle(t *testing.T) {
	app := newTestApp(t)

	acme := app.registerOrg(t, "acme-admin", "s3cret-pass", "Acme Corp")
	require.NotEmpty(t, acme.Token)
	assert.Equal(t, "acme-admin", acme.User.Username)

	// Registering the same username again conflicts.
	w := app.request(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "acme-admin",
		"password": "other",
		"orgName":  "Imposter Org",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "conflict", errorCode(t, w))

	// Login failures are uniform regardless of which part was wrong.
	w = app.request(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "acme-admin", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	wrongPassCode := errorCode(t, w)

	w = app.request(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "no-such-user", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, wrongPassCode, errorCode(t, w))

	// Employees.
	w = app.request(t, http.MethodPost, "/api/employees", acme.Token, gin.H{
		"name": "Alice Johnson", "email": "alice@acme.example",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var alice employeePayload
	decodeData(t, w, &alice)
	assert.NotZero(t, alice.ID)

	w = app.request(t, http.MethodPost, "/api/employees", acme.Token, gin.H{
		"name": "Bob Smith", "email": "bob@acme.example",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var bob employeePayload
	decodeData(t, w, &bob)

	// Duplicate email conflicts.
	w = app.request(t, http.MethodPost, "/api/employees", acme.Token, gin.H{
		"name": "Alice Clone", "email": "alice@acme.example",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Invalid email is a validation error.
	w = app.request(t, http.MethodPost, "/api/employees", acme.Token, gin.H{
		"name": "No Email", "email": "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation_error", errorCode(t, w))

	w = app.request(t, http.MethodGet, "/api/employees", acme.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var employees []employeePayload
	decodeData(t, w, &employees)
	assert.Len(t, employees, 2)

	w = app.request(t, http.MethodPut, fmt.Sprintf("/api/employees/%d", alice.ID), acme.Token, gin.H{
		"name": "Alice J. Johnson", "email": "alice@acme.example",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = app.request(t, http.MethodGet, fmt.Sprintf("/api/employees/%d", alice.ID), acme.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var updated employeePayload
	decodeData(t, w, &updated)
	assert.Equal(t, "Alice J. Johnson", updated.Name)

	// A malformed id parameter is a validation error, not a 404.
	w = app.request(t, http.MethodGet, "/api/employees/abc", acme.Token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Teams.
	w = app.request(t, http.MethodPost, "/api/teams", acme.Token, gin.H{"name": "Engineering"})
	require.Equal(t, http.StatusCreated, w.Code)
	var engineering teamPayload
	decodeData(t, w, &engineering)

	// Assignments.
	w = app.request(t, http.MethodPost, "/api/assignments", acme.Token, gin.H{
		"employeeId": alice.ID, "teamId": engineering.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Assigning the same pair again is accepted and stays a single row.
	w = app.request(t, http.MethodPost, "/api/assignments", acme.Token, gin.H{
		"employeeId": alice.ID, "teamId": engineering.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = app.request(t, http.MethodGet, "/api/assignments", acme.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var assignments []assignmentPayload
	decodeData(t, w, &assignments)
	require.Len(t, assignments, 1)
	assert.Equal(t, "Alice J. Johnson", assignments[0].EmployeeName)
	assert.Equal(t, "Engineering", assignments[0].TeamName)

	// Unassign takes the pair as a DELETE body.
	w = app.request(t, http.MethodDelete, "/api/assignments", acme.Token, gin.H{
		"employeeId": alice.ID, "teamId": engineering.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = app.request(t, http.MethodDelete, "/api/assignments", acme.Token, gin.H{
		"employeeId": alice.ID, "teamId": engineering.ID,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Delete an employee; the listing shrinks.
	w = app.request(t, http.MethodDelete, fmt.Sprintf("/api/employees/%d", bob.ID), acme.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = app.request(t, http.MethodDelete, fmt.Sprintf("/api/employees/%d", bob.ID), acme.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// The audit trail reflects everything, newest first, with the username.
	app.audit.Wait()
	w = app.request(t, http.MethodGet, "/api/logs", acme.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var logs []logPayload
	decodeData(t, w, &logs)
	require.NotEmpty(t, logs)

	for i := 1; i < len(logs); i++ {
		assert.False(t, logs[i].Timestamp.After(logs[i-1].Timestamp))
	}

	actions := make(map[string]bool)
	for _, entry := range logs {
		assert.Equal(t, "acme-admin", entry.User)
		actions[entry.Action] = true
	}
	assert.True(t, actions["registered and created organization"])
	assert.True(t, actions["added a new employee"])
	assert.True(t, actions["added a new team"])
	assert.True(t, actions[fmt.Sprintf("assigned employee %d to team %d", alice.ID, engineering.ID)])
	assert.True(t, actions[fmt.Sprintf("removed employee %d from team %d", alice.ID, engineering.ID)])
	assert.True(t, actions[fmt.Sprintf("deleted employee %d", bob.ID)])

	// Logout is audit-only; the token keeps working afterwards.
	w = app.request(t, http.MethodPost, "/api/auth/logout", acme.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.request(t, http.MethodGet, "/api/employees", acme.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestValidationErrors(t *testing.T) {
	app := newTestApp(t)

	w := app.request(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "incomplete",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation_error", errorCode(t, w))

	acme := app.registerOrg(t, "acme-admin", "s3cret-pass", "Acme Corp")

	w = app.request(t, http.MethodPost, "/api/teams", acme.Token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.request(t, http.MethodPost, "/api/assignments", acme.Token, gin.H{"employeeId": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnauthenticatedAccess(t *testing.T) {
	app := newTestApp(t)

	paths := []string{"/api/employees", "/api/teams", "/api/assignments", "/api/logs"}
	for _, path := range paths {
		w := app.request(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.Equal(t, "unauthenticated", errorCode(t, w))
	}
}

func TestHealthEndpoints(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := app.request(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}
