// Package journal records order lifecycle events in a relational database
// through GORM and reads them back as order history. SQLite, PostgreSQL and
// MySQL are supported. Orders themselves are never restored from the journal.
//
// Usage:
//
//	db, err := journal.Open("sqlite", "file::memory:?cache=shared")
//	if err != nil {
//	    return err
//	}
//	j, err := journal.NewGormJournal(db)
//	if err != nil {
//	    return err
//	}
//	svc, err := services.NewOrderService(repo, catalog, logger, j)
package journal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coffeeshop/internal/adapters/out/notifiers"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/errs"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

var ErrUnsupportedDriver = errors.New("unsupported journal driver")

// Open connects to the journal database. GORM's own logging is limited to
// warnings.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverMySQL:
		// parseTime is required to scan DATETIME into time.Time.
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s journal: %w", driver, err)
	}
	return db, nil
}

// GormJournal is an order subscriber that stores every event, and the
// ports.EventJournal that reads them back.
type GormJournal struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormJournal migrates the schema and returns a ready journal.
func NewGormJournal(db *gorm.DB) (*GormJournal, error) {
	if db == nil {
		return nil, errs.NewValueIsRequiredError("db")
	}
	if err := db.AutoMigrate(&EventDTO{}, &EventLineDTO{}); err != nil {
		return nil, fmt.Errorf("migrate journal: %w", err)
	}
	return &GormJournal{db: db, now: time.Now}, nil
}

var _ ports.EventJournal = (*GormJournal)(nil)

// Notify writes the event and its lines in one transaction.
func (j *GormJournal) Notify(ctx context.Context, o *order.Order, event order.Event) error {
	dto, err := fromEvent(notifiers.NewOrderEvent(o, event, j.now()))
	if err != nil {
		return err
	}

	return j.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&dto).Error; err != nil {
			return fmt.Errorf("record %s for order %d: %w", event, o.ID(), err)
		}
		return nil
	})
}

// History returns the events of orderID, oldest first.
func (j *GormJournal) History(ctx context.Context, orderID int) ([]ports.JournalEntry, error) {
	var dtos []EventDTO
	err := j.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Where("order_id = ?", orderID).
		Order("occurred_at, seq").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]ports.JournalEntry, 0, len(dtos))
	for _, dto := range dtos {
		entries = append(entries, toEntry(dto))
	}
	return entries, nil
}

// Close releases the underlying connection pool.
func (j *GormJournal) Close() error {
	sqlDB, err := j.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
