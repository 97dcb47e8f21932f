// Package storetest opens throwaway in-memory ledger stores for package tests.
package storetest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/repository/store"
)

type nopMetrics struct{}

func (nopMetrics) Observe(string, error, time.Time) {}

// New returns a migrated SQLite store that is closed when the test ends.
func New(t testing.TB) *store.Repository {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	repo, err := store.Open(store.Config{Driver: store.DriverSQLite, DSN: dsn}, nopMetrics{})
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	if err := repo.AutoMigrate(context.Background()); err != nil {
		t.Fatalf("migrate sqlite store: %v", err)
	}
	return repo
}
