package model

import (
	"time"

	"gorm.io/gorm"
)

// Session is one practice attempt: up to ten questions for a single
// operation. Rows are immutable once written, apart from soft deletion.
type Session struct {
	ID             string         `json:"id" gorm:"primaryKey"`
	UserID         string         `json:"user_id" gorm:"not null;index"`
	Operation      string         `json:"operation" gorm:"not null;index"` // addition, subtraction, multiplication, division
	Level          int            `json:"level" gorm:"not null;default:1"`
	TotalQuestions int            `json:"total_questions" gorm:"not null"`
	CorrectAnswers int            `json:"correct_answers" gorm:"not null"`
	AverageTime    float64        `json:"average_time" gorm:"not null"` // seconds
	Status         string         `json:"status" gorm:"not null;default:completed;index"` // completed, cancelled
	StartedAt      time.Time      `json:"started_at" gorm:"not null"`
	CompletedAt    *time.Time     `json:"completed_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

// Question is an answered prompt belonging to a session.
type Question struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	SessionID  string    `json:"session_id" gorm:"not null;index"`
	Operation  string    `json:"operation" gorm:"not null;index"`
	Num1       int       `json:"num1" gorm:"not null"`
	Num2       int       `json:"num2" gorm:"not null"`
	UserAnswer int       `json:"user_answer"`
	Correct    bool      `json:"correct"`
	TimeSpent  float64   `json:"time_spent"` // seconds
	CreatedAt  time.Time `json:"created_at"`

	Session Session `json:"-" gorm:"foreignKey:SessionID"`
}
