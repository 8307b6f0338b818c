package models

import "time"

// User rows are owned by the identity system; the table exists here only so
// host/guest/reviewer foreign keys have a target. No user behavior is defined
// in this service.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:150;uniqueIndex" json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
