package queries

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// GetCourierHistoryQueryHandler lists the orders a courier has fulfilled,
// ratings included where the client left one.
type GetCourierHistoryQueryHandler struct {
	reader OrderReader
}

// NewGetCourierHistoryQueryHandler creates a handler for a courier's
// fulfilled history.
func NewGetCourierHistoryQueryHandler(reader OrderReader) GetCourierHistoryQueryHandler {
	return GetCourierHistoryQueryHandler{reader: reader}
}

// Handle returns the courier's completed orders in submission order.
func (h GetCourierHistoryQueryHandler) Handle(ctx context.Context, query GetCourierOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	history, err := h.reader.GetAll(ctx, order.CourierHistory(query.CourierName()))
	if err != nil {
		return nil, err
	}

	return newOrderResponses(history), nil
}
