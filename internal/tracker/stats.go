package tracker

import (
	"fmt"

	"civicdesk/backend/internal/models"
	"civicdesk/backend/internal/policy"
)

// Stats is the admin dashboard aggregate. Derived on every read; nothing
// here is persisted.
type Stats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Resolved int64 `json:"resolved"`

	ByStatus     map[models.Status]int64 `json:"by_status"`
	ByDepartment map[string]int64        `json:"by_department"`
}

// Stats computes the aggregate complaint counts. Resolved covers both the
// Completed and Resolved labels.
func (s *Service) Stats(actor policy.Actor) (*Stats, error) {
	if !policy.CanViewStats(actor) {
		return nil, fmt.Errorf("%w: stats are admin-only", ErrForbidden)
	}

	byStatus, err := s.Storage.ComplaintStatusCounts()
	if err != nil {
		return nil, err
	}
	byDept, err := s.Storage.ComplaintDepartmentCounts()
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		ByStatus:     byStatus,
		ByDepartment: byDept,
	}
	for status, n := range byStatus {
		stats.Total += n
		switch status {
		case models.StatusPending:
			stats.Pending += n
		case models.StatusCompleted, models.StatusResolved:
			stats.Resolved += n
		}
	}
	return stats, nil
}
