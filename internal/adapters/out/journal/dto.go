package journal

import (
	"time"

	"coffeeshop/internal/adapters/out/notifiers"
	"coffeeshop/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventDTO is one row of the order_events table. Seq orders events that share
// a timestamp.
type EventDTO struct {
	Seq             uint            `gorm:"primaryKey;autoIncrement"`
	EventID         uuid.UUID       `gorm:"size:36;uniqueIndex"`
	OrderID         int             `gorm:"index"`
	Event           string          `gorm:"size:64"`
	Status          string          `gorm:"size:32"`
	StatusLabel     string          `gorm:"size:64"`
	Total           decimal.Decimal `gorm:"type:text"`
	DiscountPercent decimal.Decimal `gorm:"type:text"`
	OccurredAt      time.Time       `gorm:"index"`
	Lines           []EventLineDTO  `gorm:"foreignKey:EventSeq;constraint:OnDelete:CASCADE"`
}

func (EventDTO) TableName() string {
	return "order_events"
}

// EventLineDTO stores the display name of one order line at event time.
type EventLineDTO struct {
	ID       uint `gorm:"primaryKey;autoIncrement"`
	EventSeq uint `gorm:"index"`
	Position int
	Name     string
}

func (EventLineDTO) TableName() string {
	return "order_event_lines"
}

func fromEvent(evt notifiers.OrderEvent) (EventDTO, error) {
	eventID, err := uuid.Parse(evt.EventID)
	if err != nil {
		return EventDTO{}, err
	}

	lines := make([]EventLineDTO, 0, len(evt.Lines))
	for i, name := range evt.Lines {
		lines = append(lines, EventLineDTO{Position: i, Name: name})
	}

	return EventDTO{
		EventID:         eventID,
		OrderID:         evt.OrderID,
		Event:           evt.Event,
		Status:          evt.Status,
		StatusLabel:     evt.StatusLabel,
		Total:           evt.Total,
		DiscountPercent: evt.DiscountPercent,
		OccurredAt:      evt.OccurredAt,
		Lines:           lines,
	}, nil
}

func toEntry(dto EventDTO) ports.JournalEntry {
	lines := make([]string, 0, len(dto.Lines))
	for _, line := range dto.Lines {
		lines = append(lines, line.Name)
	}

	return ports.JournalEntry{
		EventID:         dto.EventID.String(),
		OrderID:         dto.OrderID,
		Event:           dto.Event,
		Status:          dto.Status,
		StatusLabel:     dto.StatusLabel,
		Lines:           lines,
		Total:           dto.Total,
		DiscountPercent: dto.DiscountPercent,
		OccurredAt:      dto.OccurredAt.UTC(),
	}
}
