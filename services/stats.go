package services

import (
	"errors"
	"math"

	"github.com/mathfacts-fun/mathfacts_api/dto"
	"github.com/mathfacts-fun/mathfacts_api/model"
	"github.com/mathfacts-fun/mathfacts_api/shared"

	"github.com/alphabatem/common/context"
	"gorm.io/gorm"
)

type StatsService struct {
	context.DefaultService

	postgresSvc *PostgresService
}

const STATS_SVC = "stats_svc"

func (svc StatsService) Id() string {
	return STATS_SVC
}

func (svc *StatsService) Configure(ctx *context.Context) error {
	svc.postgresSvc = ctx.Service(POSTGRES_SVC).(*PostgresService)
	return svc.DefaultService.Configure(ctx)
}

func (svc *StatsService) Start() error {
	return nil
}

// ==================== AGGREGATION ====================

// CalculateAverageAccuracy averages each session's own accuracy ratio rather
// than pooling questions, so a 10-question session and a 3-question session
// weigh the same. Returns a rounded percentage, 0 for no sessions.
func CalculateAverageAccuracy(sessions []model.Session) int {
	if len(sessions) == 0 {
		return 0
	}

	sum := 0.0
	for _, s := range sessions {
		if s.TotalQuestions > 0 {
			sum += float64(s.CorrectAnswers) / float64(s.TotalQuestions)
		}
	}

	return int(math.Round(sum / float64(len(sessions)) * 100))
}

// CalculateAverageTime returns the mean per-session average answer time in
// whole seconds, 0 for no sessions.
func CalculateAverageTime(sessions []model.Session) int {
	if len(sessions) == 0 {
		return 0
	}

	sum := 0.0
	for _, s := range sessions {
		sum += s.AverageTime
	}

	return int(math.Round(sum / float64(len(sessions))))
}

// StatsByOperation buckets sessions into the four fixed operations. Every
// operation always appears, with zeroed stats when unpracticed.
func StatsByOperation(sessions []model.Session) map[string]dto.OperationStats {
	buckets := make(map[string][]model.Session, len(shared.Operations))
	for _, s := range sessions {
		buckets[s.Operation] = append(buckets[s.Operation], s)
	}

	stats := make(map[string]dto.OperationStats, len(shared.Operations))
	for _, op := range shared.Operations {
		group := buckets[op]
		stats[op] = dto.OperationStats{
			Accuracy:      CalculateAverageAccuracy(group),
			AverageTime:   CalculateAverageTime(group),
			TotalSessions: len(group),
		}
	}
	return stats
}

func OverallStats(sessions []model.Session) dto.OperationStats {
	return dto.OperationStats{
		Accuracy:      CalculateAverageAccuracy(sessions),
		AverageTime:   CalculateAverageTime(sessions),
		TotalSessions: len(sessions),
	}
}

// SerializeSessions normalizes session timestamps to ISO-8601 strings for
// display.
func SerializeSessions(sessions []model.Session) []dto.SerializedSession {
	out := make([]dto.SerializedSession, 0, len(sessions))
	for _, s := range sessions {
		serialized := dto.SerializedSession{
			ID:             s.ID,
			Operation:      s.Operation,
			Level:          s.Level,
			TotalQuestions: s.TotalQuestions,
			CorrectAnswers: s.CorrectAnswers,
			AverageTime:    s.AverageTime,
			Status:         s.Status,
			StartedAt:      shared.FormatTime(s.StartedAt),
		}
		if s.CompletedAt != nil {
			serialized.CompletedAt = shared.FormatTime(*s.CompletedAt)
		}
		out = append(out, serialized)
	}
	return out
}

// ==================== DASHBOARDS ====================

func (svc *StatsService) GetStudentDashboard(userID string) (*dto.SessionStats, error) {
	sessions, err := svc.postgresSvc.Sessions().GetSessionsByUserID(userID)
	if err != nil {
		return nil, svc.postgresSvc.HandleError(err)
	}

	recent, err := svc.postgresSvc.Sessions().GetRecentSessionsByUserID(userID, shared.RecentSessionsLimit)
	if err != nil {
		return nil, svc.postgresSvc.HandleError(err)
	}

	return &dto.SessionStats{
		ByOperation:    StatsByOperation(sessions),
		Overall:        OverallStats(sessions),
		RecentSessions: SerializeSessions(recent),
	}, nil
}

// GetStudentProgress builds the per-student view shown to teachers. Access
// control is the caller's responsibility.
func (svc *StatsService) GetStudentProgress(studentID string) (*dto.StudentProgressResponse, error) {
	student, err := svc.postgresSvc.Users().GetUserByID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Student not found")
		}
		return nil, svc.postgresSvc.HandleError(err)
	}

	sessions, err := svc.postgresSvc.Sessions().GetSessionsByUserID(studentID)
	if err != nil {
		return nil, svc.postgresSvc.HandleError(err)
	}

	recent, err := svc.postgresSvc.Sessions().GetRecentSessionsByUserID(studentID, shared.RecentSessionsLimit)
	if err != nil {
		return nil, svc.postgresSvc.HandleError(err)
	}

	return &dto.StudentProgressResponse{
		StudentID:       student.ID,
		StudentName:     student.Name,
		TotalSessions:   len(sessions),
		AverageAccuracy: CalculateAverageAccuracy(sessions),
		AverageTime:     CalculateAverageTime(sessions),
		RecentSessions:  SerializeSessions(recent),
	}, nil
}
