package queries

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// GetClientActiveOrdersQueryHandler lists a client's in-flight orders:
// waiting in the open pool or held by a courier. The courier's name and
// progress are visible to the client here.
type GetClientActiveOrdersQueryHandler struct {
	reader OrderReader
}

// NewGetClientActiveOrdersQueryHandler creates a handler for a client's
// in-flight orders.
func NewGetClientActiveOrdersQueryHandler(reader OrderReader) GetClientActiveOrdersQueryHandler {
	return GetClientActiveOrdersQueryHandler{reader: reader}
}

// Handle returns the client's pending and accepted orders in submission
// order.
func (h GetClientActiveOrdersQueryHandler) Handle(ctx context.Context, query GetClientOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	active, err := h.reader.GetAll(ctx, order.ClientActive(query.ClientName()))
	if err != nil {
		return nil, err
	}

	return newOrderResponses(active), nil
}
