package services

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fieldflow/backoffice/internal/db/repositories"
	"fieldflow/backoffice/internal/metrics"
	gormModels "fieldflow/backoffice/internal/models/gorm"
)

// newTestDB opens an isolated in-memory database per test. The shared
// cache keeps the database alive across the pool's connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&gormModels.FieldTicket{},
		&gormModels.LaborItem{},
		&gormModels.EquipmentItem{},
		&gormModels.MaterialItem{},
		&gormModels.LEM{},
		&gormModels.ImportProfile{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

var (
	testMetricsOnce sync.Once
	testMetrics     *metrics.MetricsRegistry
)

// testMetricsRegistry returns a process-wide registry; prometheus
// rejects duplicate metric registration, so tests share one.
func testMetricsRegistry() *metrics.MetricsRegistry {
	testMetricsOnce.Do(func() {
		testMetrics = metrics.NewMetricsRegistry()
	})
	return testMetrics
}

func newTicketRepo(t *testing.T) (*repositories.TicketRepositoryGORM, *gorm.DB) {
	db := newTestDB(t)
	return repositories.NewTicketRepositoryGORM(db), db
}
