package queries

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// GetOpenOrdersQueryHandler lists the open pool for couriers browsing
// available work.
type GetOpenOrdersQueryHandler struct {
	reader OrderReader
}

// NewGetOpenOrdersQueryHandler creates a handler for open pool listings.
func NewGetOpenOrdersQueryHandler(reader OrderReader) GetOpenOrdersQueryHandler {
	return GetOpenOrdersQueryHandler{reader: reader}
}

// Handle returns pending orders in submission order, capped by the query's
// limit when one is set.
func (h GetOpenOrdersQueryHandler) Handle(ctx context.Context, query GetOpenOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	open, err := h.reader.GetAll(ctx, order.OpenPool())
	if err != nil {
		return nil, err
	}

	if limit := query.Limit(); limit > 0 && len(open) > limit {
		open = open[:limit]
	}

	return newOrderResponses(open), nil
}
