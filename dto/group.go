package dto

import "time"

// ==================== GROUP REQUEST DTOs ====================

type CreateGroupRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100" example:"Class 4B"`
}

func (c CreateGroupRequest) Validate() error {
	return GetValidator().Struct(c)
}

// AddGroupMemberRequest adds a student to a group by email, the way the
// teacher dashboard's add-student dialog works.
type AddGroupMemberRequest struct {
	Email string `json:"email" validate:"required,email" example:"student@example.com"`
}

func (a AddGroupMemberRequest) Validate() error {
	return GetValidator().Struct(a)
}

// ==================== GROUP RESPONSE DTOs ====================

type GroupMemberInfo struct {
	ID        string    `json:"id" example:"0190cafe-babe-7000-8000-000000000004"`
	StudentID string    `json:"student_id" example:"0190cafe-babe-7000-8000-000000000003"`
	Name      string    `json:"name" example:"Sam Pupil"`
	Email     string    `json:"email" example:"student@example.com"`
	JoinedAt  time.Time `json:"joined_at" example:"2024-01-10T09:00:00Z"`
}

type GroupResponse struct {
	ID        string            `json:"id" example:"0190cafe-babe-7000-8000-000000000005"`
	Name      string            `json:"name" example:"Class 4B"`
	TeacherID string            `json:"teacher_id" example:"0190cafe-babe-7000-8000-000000000001"`
	CreatedAt time.Time         `json:"created_at" example:"2024-01-01T00:00:00Z"`
	Members   []GroupMemberInfo `json:"members"`
}

type GroupListResponse struct {
	Groups []GroupResponse `json:"groups"`
	Total  int             `json:"total" example:"3"`
}
