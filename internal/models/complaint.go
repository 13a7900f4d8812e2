package models

import (
	"time"

	"github.com/lib/pq" // pq.StringArray
)

// Complaint is a citizen-filed issue report routed to a department.
// Owner and department never change after creation; only the status
// (and its accompanying remark) is mutated, by an officer of the
// target department.
type Complaint struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// UserID is the owning citizen. Immutable.
	UserID string `gorm:"type:text;not null;index" json:"user_id"`
	// DepartmentID is the department the complaint is routed to. Immutable.
	DepartmentID uint `gorm:"not null;index" json:"department_id"`

	Title       string `gorm:"type:text;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Status      Status `gorm:"type:text;not null;default:'Pending'" json:"status"`
	// Remark is the officer's free-text note from the latest status change.
	// Overwritten on every transition; no history is kept.
	Remark string `gorm:"type:text" json:"remark,omitempty"`
	// PhotoURLs holds optional attachment links supplied on create.
	PhotoURLs pq.StringArray `gorm:"type:text[]" json:"photo_urls,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Loaded for display: department name, submitter name and email.
	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	User       *User       `gorm:"foreignKey:UserID" json:"submitter,omitempty"`
}
