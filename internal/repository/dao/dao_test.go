package dao

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a throwaway in-memory database. SQLite covers the query
// shapes; Postgres-specific behavior (unique-violation error codes) is
// exercised by the dockertest suite.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, InitTables(db))

	return db
}

func testEvent(title string, active bool) Event {
	return Event{
		Title:     title,
		Prize:     "Polo personalizado",
		StartDate: time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, time.December, 24, 23, 59, 0, 0, time.UTC),
		IsActive:  active,
	}
}
