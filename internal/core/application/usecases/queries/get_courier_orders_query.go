package queries

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetCourierOrdersQueryIsNotConstructed = errors.New(
	"GetCourierOrdersQuery must be created via NewGetCourierOrdersQuery constructor",
)

// GetCourierOrdersQuery scopes a listing to a single courier. The same
// query serves the courier's held orders and their fulfilled history;
// the handler decides which projection to apply.
type GetCourierOrdersQuery struct { //nolint:recvcheck //using for validation
	courierName string

	guard guard.ConstructorGuard
}

// NewGetCourierOrdersQuery creates a courier-scoped listing query.
func NewGetCourierOrdersQuery(courierName string) (GetCourierOrdersQuery, error) {
	query := GetCourierOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCourierName(courierName); err != nil {
		return GetCourierOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierOrdersQueryIsNotConstructed)
}

// CourierName returns the courier the listing is scoped to.
func (q GetCourierOrdersQuery) CourierName() string {
	return q.courierName
}

func (q *GetCourierOrdersQuery) setCourierName(courierName string) error {
	if courierName == "" {
		return errs.NewValueIsRequiredError("courierName")
	}

	q.courierName = courierName
	return nil
}
