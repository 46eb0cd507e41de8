package queries

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// GetClientHistoryQueryHandler lists a client's completed orders, showing
// which courier fulfilled each and the rating the client left.
type GetClientHistoryQueryHandler struct {
	reader OrderReader
}

// NewGetClientHistoryQueryHandler creates a handler for a client's
// completed history.
func NewGetClientHistoryQueryHandler(reader OrderReader) GetClientHistoryQueryHandler {
	return GetClientHistoryQueryHandler{reader: reader}
}

// Handle returns the client's completed orders in submission order.
func (h GetClientHistoryQueryHandler) Handle(ctx context.Context, query GetClientOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	history, err := h.reader.GetAll(ctx, order.ClientHistory(query.ClientName()))
	if err != nil {
		return nil, err
	}

	return newOrderResponses(history), nil
}
