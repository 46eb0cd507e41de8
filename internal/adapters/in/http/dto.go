package http

import (
	"errors"
	"net/http"
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// SubmitOrderRequest is the body of POST /api/v1/orders.
type SubmitOrderRequest struct {
	ClientName  string  `json:"client_name"`
	Address     string  `json:"address"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// CourierActionRequest is the body of courier-side lifecycle actions:
// accept, start and complete.
type CourierActionRequest struct {
	CourierName string `json:"courier_name"`
}

// ClientActionRequest is the body of the client-side cancel action.
type ClientActionRequest struct {
	ClientName string `json:"client_name"`
}

// RateOrderRequest is the body of POST /api/v1/orders/:id/rating.
// The review may be empty; it is recorded either way.
type RateOrderRequest struct {
	ClientName string `json:"client_name"`
	Rating     int    `json:"rating"`
	Review     string `json:"review"`
}

// Order is the wire representation of an order. Optional fields are
// omitted until the corresponding lifecycle step happens.
type Order struct {
	ID          string     `json:"id"`
	ClientName  string     `json:"client_name"`
	Address     string     `json:"address"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Status      string     `json:"status"`
	Progress    string     `json:"progress"`
	CourierName *string    `json:"courier_name,omitempty"`
	Rating      *int       `json:"rating,omitempty"`
	Review      *string    `json:"review,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	AcceptedAt  *time.Time `json:"accepted_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Review is one entry of the public review feed.
type Review struct {
	ClientName string `json:"client_name"`
	Rating     int    `json:"rating"`
	Review     string `json:"review"`
}

// CourierStats is the wire representation of a courier's performance
// summary.
type CourierStats struct {
	CourierName   string  `json:"courier_name"`
	OrderCount    int     `json:"order_count"`
	TotalEarned   float64 `json:"total_earned"`
	AvgOrderValue float64 `json:"avg_order_value"`
	AvgRating     float64 `json:"avg_rating"`
}

// Error is the uniform error body of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func orderFromResponse(resp queries.OrderResponse) Order {
	return Order{
		ID:          resp.ID,
		ClientName:  resp.ClientName,
		Address:     resp.Address,
		Description: resp.Description,
		Price:       resp.Price,
		Status:      resp.Status,
		Progress:    resp.Progress,
		CourierName: resp.CourierName,
		Rating:      resp.Rating,
		Review:      resp.Review,
		CreatedAt:   resp.CreatedAt,
		AcceptedAt:  resp.AcceptedAt,
		CompletedAt: resp.CompletedAt,
	}
}

func orderFromDomain(o *order.Order) Order {
	return orderFromResponse(queries.NewOrderResponse(o))
}

func ordersFromResponses(responses []queries.OrderResponse) []Order {
	result := make([]Order, len(responses))
	for i, resp := range responses {
		result[i] = orderFromResponse(resp)
	}
	return result
}

// statusCodeOf maps domain errors onto HTTP status codes: validation
// failures are 400, unknown orders 404, ownership violations 403, and
// wrong-state attempts (lost races included) 409.
func statusCodeOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrActionForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrStateConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
