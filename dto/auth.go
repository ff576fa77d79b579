package dto

import "time"

// ==================== AUTHENTICATION REQUEST DTOs ====================

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email" example:"teacher@example.com"`
	Name     string `json:"name" validate:"required,min=2,max=60" example:"Jane Doe"`
	Password string `json:"password" validate:"required,strong_password" example:"SecurePass123!"`
	Role     string `json:"role" validate:"required,oneof=teacher student" example:"student"`
}

func (r RegisterRequest) Validate() error {
	return GetValidator().Struct(r)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"teacher@example.com"`
	Password string `json:"password" validate:"required" example:"SecurePass123!"`
}

func (l LoginRequest) Validate() error {
	return GetValidator().Struct(l)
}

// ==================== AUTHENTICATION RESPONSE DTOs ====================

type RegisterResponse struct {
	UserID  string `json:"user_id" example:"0190cafe-babe-7000-8000-000000000001"`
	Message string `json:"message" example:"Registration successful"`
}

type LoginResponse struct {
	AccessToken string   `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresIn   int64    `json:"expires_in" example:"86400"`
	User        UserInfo `json:"user"`
}

type TokenPair struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresIn   int64  `json:"expires_in" example:"86400"`
}

type UserInfo struct {
	ID          string     `json:"id" example:"0190cafe-babe-7000-8000-000000000001"`
	Email       string     `json:"email" example:"teacher@example.com"`
	Name        string     `json:"name" example:"Jane Doe"`
	Role        string     `json:"role" example:"teacher"`
	CreatedAt   time.Time  `json:"created_at" example:"2024-01-01T00:00:00Z"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty" example:"2024-01-15T10:30:00Z"`
}
