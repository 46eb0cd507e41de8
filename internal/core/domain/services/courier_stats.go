package services

import (
	"dispatch/internal/core/domain/model/order"
)

// CourierStats holds the aggregates computed over a courier's completed orders.
//
// AvgRating is computed over rated orders only; completed but unrated orders
// contribute to the earnings figures without dragging the rating down.
type CourierStats struct {
	OrderCount    int
	TotalEarned   float64
	AvgOrderValue float64
	AvgRating     float64
}

// CourierStatsCalculator is a domain service that derives a courier's
// performance summary from their completed order history.
//
// Business rules:
//   - Only completed orders count toward earnings
//   - Average order value is total earned divided by order count
//   - Average rating is the mean over rated orders only
//   - An empty history yields all-zero stats, not an error
type CourierStatsCalculator struct{}

// NewCourierStatsCalculator creates a new CourierStatsCalculator instance.
func NewCourierStatsCalculator() CourierStatsCalculator {
	return CourierStatsCalculator{}
}

// Calculate computes the stats over the given completed order history.
// The caller selects the history (typically via order.CourierHistory);
// the calculator only aggregates.
func (c CourierStatsCalculator) Calculate(history []*order.Order) CourierStats {
	stats := CourierStats{OrderCount: len(history)}
	if stats.OrderCount == 0 {
		return stats
	}

	var ratingSum, ratedCount int
	for _, o := range history {
		stats.TotalEarned += o.Price().Amount()
		if o.IsRated() {
			ratingSum += o.Rating().Value()
			ratedCount++
		}
	}

	stats.AvgOrderValue = stats.TotalEarned / float64(stats.OrderCount)
	if ratedCount > 0 {
		stats.AvgRating = float64(ratingSum) / float64(ratedCount)
	}

	return stats
}
