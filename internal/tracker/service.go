// Package tracker implements the complaint lifecycle: creation, status
// transitions, deletion and the aggregate views, all gated through the
// access policy.
package tracker

import (
	"fmt"
	"strings"

	"civicdesk/backend/internal/models"
	"civicdesk/backend/internal/policy"
	"civicdesk/backend/internal/storage"

	"go.uber.org/zap"
)

// Service handles the business logic for complaints.
type Service struct {
	Storage storage.Storage
	Log     *zap.Logger
}

// NewService creates a new tracker service.
func NewService(s storage.Storage, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{Storage: s, Log: log}
}

// CreateInput is what a citizen submits when filing a complaint. Any
// client-supplied status is ignored: a new complaint is always Pending.
type CreateInput struct {
	DepartmentID uint     `json:"department_id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	PhotoURLs    []string `json:"photo_urls"`
	// Status is accepted in the payload but never trusted.
	Status string `json:"status"`
}

// Create files a new complaint owned by the acting citizen. The owner is
// taken from the actor, never from the body.
func (s *Service) Create(actor policy.Actor, in CreateInput) (*models.Complaint, error) {
	if !policy.CanCreate(actor) {
		return nil, fmt.Errorf("%w: only citizens file complaints", ErrForbidden)
	}

	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", ErrValidation)
	}

	dept, err := s.Storage.GetDepartmentByID(in.DepartmentID)
	if err != nil {
		return nil, err
	}
	if dept == nil {
		return nil, fmt.Errorf("%w: unknown department %d", ErrValidation, in.DepartmentID)
	}

	complaint := &models.Complaint{
		UserID:       actor.UserID,
		DepartmentID: in.DepartmentID,
		Title:        in.Title,
		Description:  in.Description,
		Status:       models.StatusPending,
		PhotoURLs:    in.PhotoURLs,
	}
	if err := s.Storage.CreateComplaint(complaint); err != nil {
		return nil, err
	}

	s.Log.Info("complaint created",
		zap.Uint("id", complaint.ID),
		zap.String("user_id", complaint.UserID),
		zap.Uint("department_id", complaint.DepartmentID))
	s.publish(models.EventComplaintCreated, complaint)

	return complaint, nil
}

// Transition moves the complaint to newStatus and overwrites the remark
// when one is given. Any-to-any movement among the known statuses is
// accepted; there is no forward-only ordering.
func (s *Service) Transition(actor policy.Actor, id uint, newStatus models.Status, remark string) (*models.Complaint, error) {
	complaint, err := s.Storage.GetComplaintByID(id)
	if err != nil {
		return nil, err
	}
	if complaint == nil {
		return nil, fmt.Errorf("%w: complaint %d", ErrNotFound, id)
	}

	if !policy.CanTransition(actor, complaint) {
		return nil, fmt.Errorf("%w: not an officer of department %d", ErrForbidden, complaint.DepartmentID)
	}

	if !newStatus.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTransition, newStatus)
	}

	if err := s.Storage.UpdateComplaintStatus(id, newStatus, remark); err != nil {
		return nil, err
	}

	complaint.Status = newStatus
	if remark != "" {
		complaint.Remark = remark
	}

	s.Log.Info("complaint transitioned",
		zap.Uint("id", id),
		zap.String("status", string(newStatus)),
		zap.String("officer_id", actor.UserID))
	s.publish(models.EventComplaintUpdated, complaint)

	return complaint, nil
}

// Delete removes the complaint permanently. Admin only; no audit trail.
func (s *Service) Delete(actor policy.Actor, id uint) error {
	if !policy.CanDelete(actor) {
		return fmt.Errorf("%w: only admins delete complaints", ErrForbidden)
	}

	complaint, err := s.Storage.GetComplaintByID(id)
	if err != nil {
		return err
	}
	if complaint == nil {
		return fmt.Errorf("%w: complaint %d", ErrNotFound, id)
	}

	if err := s.Storage.DeleteComplaint(id); err != nil {
		return err
	}

	s.Log.Info("complaint deleted", zap.Uint("id", id), zap.String("admin_id", actor.UserID))
	s.publish(models.EventComplaintDeleted, complaint)

	return nil
}

// Get loads a single complaint the actor is allowed to see.
func (s *Service) Get(actor policy.Actor, id uint) (*models.Complaint, error) {
	complaint, err := s.Storage.GetComplaintByID(id)
	if err != nil {
		return nil, err
	}
	if complaint == nil {
		return nil, fmt.Errorf("%w: complaint %d", ErrNotFound, id)
	}
	if !policy.CanRead(actor, complaint) {
		return nil, fmt.Errorf("%w: complaint %d", ErrForbidden, id)
	}
	return complaint, nil
}

// List returns the complaints in the actor's scope, newest first.
func (s *Service) List(actor policy.Actor) ([]models.Complaint, error) {
	return s.Storage.ListComplaints(policy.ScopeFor(actor))
}

func (s *Service) publish(kind string, c *models.Complaint) {
	ev := models.ComplaintEvent{
		Kind:         kind,
		ComplaintID:  c.ID,
		UserID:       c.UserID,
		DepartmentID: c.DepartmentID,
		Status:       c.Status,
		Title:        c.Title,
	}
	if err := s.Storage.PublishComplaintEvent(ev); err != nil {
		// The feed is advisory; a failed publish never fails the operation.
		s.Log.Warn("failed to publish complaint event", zap.Error(err))
	}
}
