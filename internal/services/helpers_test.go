package services_test

import (
	"io"
	"strconv"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/workoflow/hrms-api/internal/database"
	"github.com/workoflow/hrms-api/internal/services"
)

// newTestDB opens an in-memory SQLite database with the full schema. The
// single connection keeps every statement on the same in-memory instance.
func newTestDB(t *testing.T) database.Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return database.NewGormAdapter(db)
}

func newTestLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newAuditService(db database.Database) *services.AuditService {
	return services.NewAuditService(db, newTestLogger())
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
