package order

import "time"

// Predicate selects orders for a read-side projection. Projections are
// computed on demand over the single authoritative collection; there are no
// separately maintained lists an order could be dropped from or duplicated in.
type Predicate func(o *Order) bool

// OpenPool selects pending orders, visible to every courier for acceptance.
func OpenPool() Predicate {
	return func(o *Order) bool {
		return o.status == Pending
	}
}

// CourierActive selects the orders a specific courier currently holds.
func CourierActive(courierName string) Predicate {
	return func(o *Order) bool {
		return o.status == Accepted && o.courierName == courierName
	}
}

// CourierHistory selects the orders a specific courier has fulfilled.
func CourierHistory(courierName string) Predicate {
	return func(o *Order) bool {
		return o.status == Completed && o.courierName == courierName
	}
}

// ClientActive selects a client's orders that are still in flight:
// waiting in the open pool or held by a courier.
func ClientActive(clientName string) Predicate {
	return func(o *Order) bool {
		return (o.status == Pending || o.status == Accepted) && o.clientName == clientName
	}
}

// ClientHistory selects a client's completed orders.
func ClientHistory(clientName string) Predicate {
	return func(o *Order) bool {
		return o.status == Completed && o.clientName == clientName
	}
}

// PublicReviews selects completed, rated orders across all clients.
func PublicReviews() Predicate {
	return func(o *Order) bool {
		return o.status == Completed && o.IsRated()
	}
}

// StaleOpen selects pending orders submitted before the cutoff,
// candidates for expiry.
func StaleOpen(cutoff time.Time) Predicate {
	return func(o *Order) bool {
		return o.status == Pending && o.createdAt.Before(cutoff)
	}
}
