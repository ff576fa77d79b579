package model

import "time"

// Group is a teacher-owned collection of students.
type Group struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	TeacherID string    `json:"teacher_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Teacher User          `json:"-" gorm:"foreignKey:TeacherID"`
	Members []GroupMember `json:"members,omitempty" gorm:"foreignKey:GroupID"`
}

type GroupMember struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	GroupID   string    `json:"group_id" gorm:"not null;uniqueIndex:idx_group_student"`
	StudentID string    `json:"student_id" gorm:"not null;uniqueIndex:idx_group_student"`
	CreatedAt time.Time `json:"created_at"`

	Student User `json:"student" gorm:"foreignKey:StudentID"`
}
