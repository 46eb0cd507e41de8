package queries

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// GetPublicReviewsQueryHandler builds the public review feed from
// completed, rated orders.
type GetPublicReviewsQueryHandler struct {
	reader OrderReader
}

// NewGetPublicReviewsQueryHandler creates a handler for the review feed.
func NewGetPublicReviewsQueryHandler(reader OrderReader) GetPublicReviewsQueryHandler {
	return GetPublicReviewsQueryHandler{reader: reader}
}

// Handle returns the review feed in submission order.
func (h GetPublicReviewsQueryHandler) Handle(ctx context.Context, query GetPublicReviewsQuery) ([]ReviewResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rated, err := h.reader.GetAll(ctx, order.PublicReviews())
	if err != nil {
		return nil, err
	}

	reviews := make([]ReviewResponse, 0, len(rated))
	for _, o := range rated {
		reviews = append(reviews, ReviewResponse{
			ClientName: o.ClientName(),
			Rating:     o.Rating().Value(),
			Review:     *o.Review(),
		})
	}

	return reviews, nil
}
