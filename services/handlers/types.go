package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mathfacts-fun/mathfacts_api/dto"
)

type AuthServiceInterface interface {
	Register(req dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(req dto.LoginRequest, clientIP, userAgent string) (*dto.LoginResponse, error)
	Logout(userID, clientIP, userAgent string) error
	GetCurrentUser(userID string) (*dto.UserInfo, error)
	RequiredAuth() fiber.Handler
	RequireRole(role string) fiber.Handler
}

type PracticeServiceInterface interface {
	StartRun(userID, operation string) (*dto.QuestionResponse, error)
	SubmitAnswer(userID string, req dto.AnswerRequest) (*dto.AnswerResponse, error)
	CancelRun(userID string) (*dto.SessionSummary, error)
	SubmitSession(userID string, req dto.SubmitSessionRequest) (*dto.SubmitSessionResponse, error)
}

type StatsServiceInterface interface {
	GetStudentDashboard(userID string) (*dto.SessionStats, error)
}

type GroupServiceInterface interface {
	CreateGroup(teacherID string, req dto.CreateGroupRequest) (*dto.GroupResponse, error)
	GetGroups(teacherID string) (*dto.GroupListResponse, error)
	DeleteGroup(teacherID, groupID string) error
	AddMember(teacherID, groupID string, req dto.AddGroupMemberRequest) (*dto.GroupMemberInfo, error)
	RemoveMember(teacherID, groupID, studentID string) error
	GetMemberProgress(teacherID, groupID, studentID string) (*dto.StudentProgressResponse, error)
}
