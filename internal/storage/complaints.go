package storage

import (
	"encoding/json"
	"errors"

	"civicdesk/backend/internal/models"
	"civicdesk/backend/internal/policy"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (s *Service) CreateComplaint(c *models.Complaint) error {
	if err := s.DB.Create(c).Error; err != nil {
		s.Log.Error("failed to save complaint",
			zap.String("user_id", c.UserID), zap.Error(err))
		return err
	}
	return nil
}

// GetComplaintByID loads one complaint with its department and submitter
// joined for display. Returns (nil, nil) when the id is unknown.
func (s *Service) GetComplaintByID(id uint) (*models.Complaint, error) {
	var c models.Complaint
	err := s.DB.Preload("Department").Preload("User").First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListComplaints returns the complaints visible through the given scope,
// newest first.
func (s *Service) ListComplaints(scope policy.Scope) ([]models.Complaint, error) {
	query := s.DB.Preload("Department").Preload("User").Order("created_at desc")
	if scope.OwnerID != "" {
		query = query.Where("user_id = ?", scope.OwnerID)
	}
	if scope.DepartmentID != nil {
		query = query.Where("department_id = ?", *scope.DepartmentID)
	}

	var complaints []models.Complaint
	if err := query.Find(&complaints).Error; err != nil {
		s.Log.Error("failed to list complaints", zap.Error(err))
		return nil, err
	}
	return complaints, nil
}

// UpdateComplaintStatus mutates the status field and, when remark is
// non-empty, the latest remark. Nothing else on the row changes.
func (s *Service) UpdateComplaintStatus(id uint, status models.Status, remark string) error {
	updates := map[string]interface{}{"status": status}
	if remark != "" {
		updates["remark"] = remark
	}
	return s.DB.Model(&models.Complaint{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// DeleteComplaint removes the row permanently.
func (s *Service) DeleteComplaint(id uint) error {
	return s.DB.Unscoped().Delete(&models.Complaint{}, id).Error
}

type statusCount struct {
	Status models.Status
	Count  int64
}

// ComplaintStatusCounts groups the whole table by status. No ordering is
// guaranteed between groups.
func (s *Service) ComplaintStatusCounts() (map[models.Status]int64, error) {
	var rows []statusCount
	err := s.DB.Model(&models.Complaint{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.Status]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}

type departmentCount struct {
	Name  string
	Count int64
}

// ComplaintDepartmentCounts groups the whole table by department name.
func (s *Service) ComplaintDepartmentCounts() (map[string]int64, error) {
	var rows []departmentCount
	err := s.DB.Model(&models.Complaint{}).
		Select("departments.name as name, count(*) as count").
		Joins("JOIN departments ON departments.id = complaints.department_id").
		Group("departments.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Name] = r.Count
	}
	return counts, nil
}

// PublishComplaintEvent pushes the event through Redis Pub/Sub for the
// dashboard feeds. Best effort from the caller's point of view; a nil Redis
// client silently drops events.
func (s *Service) PublishComplaintEvent(ev models.ComplaintEvent) error {
	if s.Redis == nil {
		return nil
	}

	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	if err := s.Redis.Publish(s.Ctx, eventChannel, string(data)).Err(); err != nil {
		return err
	}
	return nil
}

// SubscribeComplaintEvents opens the Pub/Sub subscription the events hub
// listens on.
func (s *Service) SubscribeComplaintEvents() *redis.PubSub {
	return s.Redis.Subscribe(s.Ctx, eventChannel)
}
