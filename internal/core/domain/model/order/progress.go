package order

import "dispatch/internal/pkg/errs"

// Progress is the courier's reported sub-state of an accepted order.
// It refines Accepted without touching the main lifecycle status:
// accepting an order puts the courier en route, and the courier reports
// starting the actual work on site.
type Progress int

const (
	// ProgressNone means no courier activity: the order is pending,
	// cancelled, or the value is simply unset.
	ProgressNone Progress = iota

	// ProgressEnRoute means the accepting courier is on the way.
	ProgressEnRoute

	// ProgressWorking means the courier has started the work on site.
	ProgressWorking
)

// String returns the snake_case name of the progress value.
func (p Progress) String() string {
	switch p {
	case ProgressEnRoute:
		return "en_route"
	case ProgressWorking:
		return "working"
	default:
		return "none"
	}
}

// StartWork advances progress from en route to working.
// Reporting work twice, or before accepting, is a state conflict.
func (p Progress) StartWork() (Progress, error) {
	if p != ProgressEnRoute {
		return 0, errs.NewStateConflictError("order progress", p.String())
	}
	return ProgressWorking, nil
}
