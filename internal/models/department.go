package models

// Department is a static reference entity complaints are routed to.
// Seeded once; read-only at runtime except for admin-created entries.
type Department struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
