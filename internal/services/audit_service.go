package services

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/workoflow/hrms-api/internal/database"
	"github.com/workoflow/hrms-api/internal/models"
)

// logListLimit caps the log listing at the 100 most recent entries.
const logListLimit = 100

// AuditService appends an immutable record of every state-changing action.
// Appends are fire-and-forget: they run outside the request path and a
// persistence failure is reported to the operational log, never to the
// caller of the triggering action.
type AuditService struct {
	db     database.Database
	logger *logrus.Logger
	wg     sync.WaitGroup
}

func NewAuditService(db database.Database, logger *logrus.Logger) *AuditService {
	return &AuditService{
		db:     db,
		logger: logger,
	}
}

// Record appends one log entry with a server-generated timestamp. It returns
// immediately; the write happens in the background.
func (s *AuditService) Record(userID uint, action, details string) {
	entry := models.LogEntry{
		UserID:    userID,
		Action:    action,
		Details:   details,
		Timestamp: time.Now().UTC(),
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.db.DB().Create(&entry).Error; err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"user_id": userID,
				"action":  action,
			}).Error("Failed to persist audit entry")
		}
	}()
}

// Wait blocks until all in-flight appends have finished. Called on shutdown
// and by tests that assert on recorded entries.
func (s *AuditService) Wait() {
	s.wg.Wait()
}

// ListByOrganization returns the most recent entries for an organization,
// newest first, joined with the acting user's username. Entries have no
// organization id of their own; scoping goes through the acting user.
func (s *AuditService) ListByOrganization(ctx context.Context, orgID uint) ([]models.LogView, error) {
	var rows []models.LogView
	err := s.db.DB().WithContext(ctx).
		Table("logs").
		Select(`logs.id, logs.action, logs.details, logs.timestamp, users.username AS "user"`).
		Joins("JOIN users ON users.id = logs.user_id").
		Where("users.organization_id = ?", orgID).
		Order("logs.timestamp DESC, logs.id DESC").
		Limit(logListLimit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
