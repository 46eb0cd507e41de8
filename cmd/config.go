package cmd

type Config struct {
	HTTPPort string

	// PendingOrderTTL is how long a pending order may wait in the open
	// pool before the expiry job withdraws it. Empty disables expiry.
	PendingOrderTTL string
}
