package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a registered account: a citizen, an officer or an admin.
// Role and department are fixed at registration.
type User struct {
	ID           string `gorm:"primaryKey" json:"id"` // UUID
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	FullName     string `gorm:"type:text" json:"full_name"`
	Role         Role   `gorm:"type:text;not null;default:'citizen'" json:"role"`
	// DepartmentID is set iff Role is officer.
	DepartmentID *uint     `gorm:"index" json:"department_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// BeforeCreate is a GORM hook that assigns a fresh UUID when the ID
// has not been set by the caller.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}
