package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is one recorded lifecycle event of an order.
type JournalEntry struct {
	EventID         string
	OrderID         int
	Event           string
	Status          string
	StatusLabel     string
	Lines           []string
	Total           decimal.Decimal
	DiscountPercent decimal.Decimal
	OccurredAt      time.Time
}

// EventJournal reads back the events recorded for an order.
type EventJournal interface {
	// History returns the entries of orderID, oldest first. An order without
	// entries yields an empty slice and no error.
	History(ctx context.Context, orderID int) ([]JournalEntry, error)
}
