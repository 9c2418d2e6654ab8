package queries

import (
	"context"

	"coffeeshop/internal/core/ports"
)

// GetOrderHistoryQueryHandler reads the event journal. A nil journal means
// the journal is switched off and every call fails with ErrJournalDisabled.
type GetOrderHistoryQueryHandler struct {
	journal ports.EventJournal
}

func NewGetOrderHistoryQueryHandler(journal ports.EventJournal) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{journal: journal}
}

func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]ports.JournalEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if h.journal == nil {
		return nil, ErrJournalDisabled
	}

	return h.journal.History(ctx, query.OrderID())
}
