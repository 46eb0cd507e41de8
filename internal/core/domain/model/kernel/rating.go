package kernel

import "dispatch/internal/pkg/errs"

// Rating bounds for courier reviews.
const (
	RatingMin Rating = 1
	RatingMax Rating = 5
)

// Rating is a client's score for a completed order, always within
// [RatingMin, RatingMax]. The zero value is invalid.
type Rating int

// NewRating creates a Rating, rejecting values outside [RatingMin, RatingMax].
func NewRating(value int) (Rating, error) {
	r := Rating(value)
	if err := r.Validate(); err != nil {
		return 0, err
	}
	return r, nil
}

// Value returns the score as a plain int.
func (r Rating) Value() int {
	return int(r)
}

// Validate checks the rating lies within the allowed bounds.
func (r Rating) Validate() error {
	if r < RatingMin || r > RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", int(r), int(RatingMin), int(RatingMax))
	}
	return nil
}
