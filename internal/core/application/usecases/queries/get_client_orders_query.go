package queries

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetClientOrdersQueryIsNotConstructed = errors.New(
	"GetClientOrdersQuery must be created via NewGetClientOrdersQuery constructor",
)

// GetClientOrdersQuery scopes a listing to a single client. The same query
// serves the client's in-flight orders and their completed history.
type GetClientOrdersQuery struct { //nolint:recvcheck //using for validation
	clientName string

	guard guard.ConstructorGuard
}

// NewGetClientOrdersQuery creates a client-scoped listing query.
func NewGetClientOrdersQuery(clientName string) (GetClientOrdersQuery, error) {
	query := GetClientOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setClientName(clientName); err != nil {
		return GetClientOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetClientOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetClientOrdersQueryIsNotConstructed)
}

// ClientName returns the client the listing is scoped to.
func (q GetClientOrdersQuery) ClientName() string {
	return q.clientName
}

func (q *GetClientOrdersQuery) setClientName(clientName string) error {
	if clientName == "" {
		return errs.NewValueIsRequiredError("clientName")
	}

	q.clientName = clientName
	return nil
}
