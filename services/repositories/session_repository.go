package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/mathfacts-fun/mathfacts_api/model"
	"gorm.io/gorm"
)

// SessionRepository handles practice session and question database operations
type SessionRepository struct {
	BaseRepository
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// CreateSessionWithQuestions persists a session row and its question rows in
// one transaction, so a half-written session can never reach the dashboards.
func (r *SessionRepository) CreateSessionWithQuestions(session *model.Session, questions []model.Question) (*model.Session, error) {
	if session.ID == "" {
		id, _ := uuid.NewV7()
		session.ID = id.String()
	}
	if session.StartedAt.IsZero() {
		session.StartedAt = time.Now()
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(session).Error; err != nil {
			return err
		}

		now := time.Now()
		for i := range questions {
			if questions[i].ID == "" {
				id, _ := uuid.NewV7()
				questions[i].ID = id.String()
			}
			questions[i].SessionID = session.ID
			questions[i].CreatedAt = now
		}

		if len(questions) == 0 {
			return nil
		}
		return tx.CreateInBatches(questions, 100).Error
	})
	if err != nil {
		return nil, err
	}

	return session, nil
}

func (r *SessionRepository) GetSessionByID(sessionID string) (*model.Session, error) {
	var session model.Session
	if err := r.db.Where("id = ?", sessionID).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) GetSessionsByUserID(userID string) ([]model.Session, error) {
	var sessions []model.Session
	if err := r.db.Where("user_id = ?", userID).Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *SessionRepository) GetRecentSessionsByUserID(userID string, limit int) ([]model.Session, error) {
	var sessions []model.Session
	if err := r.db.Where("user_id = ?", userID).
		Order("started_at DESC").Limit(limit).Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *SessionRepository) GetQuestionsBySessionID(sessionID string) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("session_id = ?", sessionID).
		Order("created_at ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *SessionRepository) CountSessionsByUserID(userID string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Session{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
