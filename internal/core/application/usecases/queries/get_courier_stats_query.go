package queries

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetCourierStatsQueryIsNotConstructed = errors.New(
	"GetCourierStatsQuery must be created via NewGetCourierStatsQuery constructor",
)

// GetCourierStatsQuery retrieves a courier's performance summary derived
// from their completed orders.
type GetCourierStatsQuery struct { //nolint:recvcheck //using for validation
	courierName string

	guard guard.ConstructorGuard
}

// NewGetCourierStatsQuery creates a courier stats query.
func NewGetCourierStatsQuery(courierName string) (GetCourierStatsQuery, error) {
	query := GetCourierStatsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCourierName(courierName); err != nil {
		return GetCourierStatsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierStatsQueryIsNotConstructed)
}

// CourierName returns the courier the stats are computed for.
func (q GetCourierStatsQuery) CourierName() string {
	return q.courierName
}

func (q *GetCourierStatsQuery) setCourierName(courierName string) error {
	if courierName == "" {
		return errs.NewValueIsRequiredError("courierName")
	}

	q.courierName = courierName
	return nil
}

// CourierStatsResponse is the read-side representation of a courier's
// performance summary. A courier with no completed orders gets all zeros.
type CourierStatsResponse struct {
	CourierName   string
	OrderCount    int
	TotalEarned   float64
	AvgOrderValue float64
	AvgRating     float64
}
