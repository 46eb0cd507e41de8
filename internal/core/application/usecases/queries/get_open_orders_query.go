package queries

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetOpenOrdersQueryIsNotConstructed = errors.New(
	"GetOpenOrdersQuery must be created via NewGetOpenOrdersQuery constructor",
)

// GetOpenOrdersQuery retrieves the open pool: pending orders visible to
// every courier, in submission order. A positive limit caps the result;
// zero means no cap.
type GetOpenOrdersQuery struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

// NewGetOpenOrdersQuery creates a query for the open pool.
func NewGetOpenOrdersQuery(limit int) (GetOpenOrdersQuery, error) {
	query := GetOpenOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setLimit(limit); err != nil {
		return GetOpenOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOpenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenOrdersQueryIsNotConstructed)
}

// Limit returns the result cap; zero means unlimited.
func (q GetOpenOrdersQuery) Limit() int {
	return q.limit
}

func (q *GetOpenOrdersQuery) setLimit(limit int) error {
	if limit < 0 {
		return errs.NewValueIsInvalidErrorWithCause("limit",
			fmt.Errorf("%d is negative", limit))
	}

	q.limit = limit
	return nil
}
