package queries

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

// GetCourierStatsQueryHandler computes a courier's performance summary over
// their completed order history.
type GetCourierStatsQueryHandler struct {
	reader     OrderReader
	calculator services.CourierStatsCalculator
}

// NewGetCourierStatsQueryHandler creates a handler for courier stats.
func NewGetCourierStatsQueryHandler(reader OrderReader, calculator services.CourierStatsCalculator) GetCourierStatsQueryHandler {
	return GetCourierStatsQueryHandler{
		reader:     reader,
		calculator: calculator,
	}
}

// Handle returns the courier's aggregates. An unknown courier is
// indistinguishable from one who has completed nothing: all zeros.
func (h GetCourierStatsQueryHandler) Handle(ctx context.Context, query GetCourierStatsQuery) (CourierStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return CourierStatsResponse{}, err
	}

	history, err := h.reader.GetAll(ctx, order.CourierHistory(query.CourierName()))
	if err != nil {
		return CourierStatsResponse{}, err
	}

	stats := h.calculator.Calculate(history)
	return CourierStatsResponse{
		CourierName:   query.CourierName(),
		OrderCount:    stats.OrderCount,
		TotalEarned:   stats.TotalEarned,
		AvgOrderValue: stats.AvgOrderValue,
		AvgRating:     stats.AvgRating,
	}, nil
}
