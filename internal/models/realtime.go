package models

// Event kinds pushed to dashboard feeds.
const (
	EventComplaintCreated = "complaint_created"
	EventComplaintUpdated = "complaint_updated"
	EventComplaintDeleted = "complaint_deleted"
)

// ComplaintEvent is the payload broadcast over Redis Pub/Sub and fanned out
// to connected dashboard feeds whenever a complaint changes. It carries just
// enough to decide visibility (owner, department) and refresh a list row.
type ComplaintEvent struct {
	Kind         string `json:"kind"`
	ComplaintID  uint   `json:"complaint_id"`
	UserID       string `json:"user_id"`
	DepartmentID uint   `json:"department_id"`
	Status       Status `json:"status"`
	Title        string `json:"title"`
}
