package models

// Status is the lifecycle stage of a complaint. Pending is the initial
// stage; Completed, Resolved and Rejected are terminal. Transitions between
// any two known statuses are accepted, only unknown values are refused.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusAssigned   Status = "Assigned"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusResolved   Status = "Resolved"
	StatusRejected   Status = "Rejected"
)

// AllStatuses lists every known status, in lifecycle order.
var AllStatuses = []Status{
	StatusPending,
	StatusAssigned,
	StatusInProgress,
	StatusCompleted,
	StatusResolved,
	StatusRejected,
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAssigned, StatusInProgress,
		StatusCompleted, StatusResolved, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether s ends the complaint lifecycle.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusResolved, StatusRejected:
		return true
	}
	return false
}
