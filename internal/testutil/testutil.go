package testutil

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/gorm"

	"github.com/saulo-duarte/goal-tracker/internal/config"
)

var dbSeq atomic.Int64

// OpenInMemoryDB opens a private in-memory SQLite database for the test and closes it on cleanup.
// The schema is left to the caller so each package migrates only what it owns.
func OpenInMemoryDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb_%d?mode=memory&cache=shared", dbSeq.Add(1))

	db, err := config.Open(context.Background(), config.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = config.Close(db) })
	return db
}
