package queries

import (
	"time"

	"dispatch/internal/core/domain/model/order"
)

// OrderResponse is the read-side representation of an order.
// Optional fields are nil until the corresponding lifecycle step happens:
// courier and acceptance time appear on accept, completion time on
// completion, rating and review once the client rates.
type OrderResponse struct {
	ID          string
	ClientName  string
	Address     string
	Description string
	Price       float64
	Status      string
	Progress    string
	CourierName *string
	Rating      *int
	Review      *string
	CreatedAt   time.Time
	AcceptedAt  *time.Time
	CompletedAt *time.Time
}

// NewOrderResponse maps an order snapshot to its read-side representation.
func NewOrderResponse(o *order.Order) OrderResponse {
	resp := OrderResponse{
		ID:          o.ID().String(),
		ClientName:  o.ClientName(),
		Address:     o.Address(),
		Description: o.Description(),
		Price:       o.Price().Amount(),
		Status:      o.Status().String(),
		Progress:    o.Progress().String(),
		Review:      o.Review(),
		CreatedAt:   o.CreatedAt(),
		AcceptedAt:  o.AcceptedAt(),
		CompletedAt: o.CompletedAt(),
	}

	if name := o.CourierName(); name != "" {
		resp.CourierName = &name
	}
	if o.IsRated() {
		value := o.Rating().Value()
		resp.Rating = &value
	}

	return resp
}

func newOrderResponses(orders []*order.Order) []OrderResponse {
	result := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, NewOrderResponse(o))
	}
	return result
}
