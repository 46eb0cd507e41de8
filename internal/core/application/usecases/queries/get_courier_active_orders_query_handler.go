package queries

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// GetCourierActiveOrdersQueryHandler lists the orders a courier currently
// holds: accepted and not yet completed.
type GetCourierActiveOrdersQueryHandler struct {
	reader OrderReader
}

// NewGetCourierActiveOrdersQueryHandler creates a handler for a courier's
// held orders.
func NewGetCourierActiveOrdersQueryHandler(reader OrderReader) GetCourierActiveOrdersQueryHandler {
	return GetCourierActiveOrdersQueryHandler{reader: reader}
}

// Handle returns the courier's held orders in submission order.
func (h GetCourierActiveOrdersQueryHandler) Handle(ctx context.Context, query GetCourierOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	held, err := h.reader.GetAll(ctx, order.CourierActive(query.CourierName()))
	if err != nil {
		return nil, err
	}

	return newOrderResponses(held), nil
}
