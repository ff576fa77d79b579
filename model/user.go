package model

import "time"

type User struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	Email          string    `json:"email" gorm:"unique;not null"`
	Name           string    `json:"name" gorm:"not null"`
	Role           string    `json:"role" gorm:"not null;default:student"` // admin, teacher, student
	HashedPassword string    `json:"-" gorm:"not null"`
	LastLoginAt    *time.Time `json:"last_login_at,omitempty"`
	LastLoginIP    string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AuthAuditLog records authentication events for security review.
type AuthAuditLog struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index"`
	Action    string    `json:"action" gorm:"not null"` // register, login, logout
	IP        string    `json:"ip"`
	UserAgent string    `json:"user_agent"`
	Success   bool      `json:"success" gorm:"not null"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp" gorm:"not null;index"`
}
