package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetPublicReviewsQueryIsNotConstructed = errors.New(
	"GetPublicReviewsQuery must be created via NewGetPublicReviewsQuery constructor",
)

// GetPublicReviewsQuery retrieves the public review feed: ratings and
// review texts from completed, rated orders across all clients.
type GetPublicReviewsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPublicReviewsQuery creates a query for the public review feed.
func NewGetPublicReviewsQuery() GetPublicReviewsQuery {
	return GetPublicReviewsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPublicReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetPublicReviewsQueryIsNotConstructed)
}

// ReviewResponse is a single entry of the public review feed. It exposes
// only what the marketplace publishes: who left the score, the score
// itself, and the review text. Addresses, prices, and courier identities
// stay private.
type ReviewResponse struct {
	ClientName string
	Rating     int
	Review     string
}
