package seeders

import (
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/mathfacts-fun/mathfacts_api/model"
	"github.com/mathfacts-fun/mathfacts_api/shared"
	"gorm.io/gorm"
)

// SessionSeeder handles seeding sample practice history
type SessionSeeder struct {
	db *gorm.DB
}

// NewSessionSeeder creates a new session seeder
func NewSessionSeeder(db *gorm.DB) *SessionSeeder {
	return &SessionSeeder{db: db}
}

// SeedSessions gives each demo student a week of practice history. Students
// with any existing sessions are skipped.
func (s *SessionSeeder) SeedSessions() error {
	var students []model.User
	if err := s.db.Where("role = ?", shared.RoleStudent).Find(&students).Error; err != nil {
		return err
	}

	for _, student := range students {
		var count int64
		if err := s.db.Model(&model.Session{}).Where("user_id = ?", student.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			log.Printf("Student %s already has sessions, skipping", student.Email)
			continue
		}

		if err := s.seedStudentHistory(student.ID); err != nil {
			log.Printf("Error seeding sessions for %s: %v", student.Email, err)
			return err
		}

		log.Printf("Seeded practice history for %s", student.Email)
	}

	return nil
}

func (s *SessionSeeder) seedStudentHistory(studentID string) error {
	sessionsPerStudent := 8 + rand.Intn(8)

	for i := 0; i < sessionsPerStudent; i++ {
		operation := shared.Operations[rand.Intn(len(shared.Operations))]
		correct := 4 + rand.Intn(7) // 4..10 of 10
		averageTime := 1.5 + rand.Float64()*4

		startedAt := time.Now().Add(-time.Duration(rand.Intn(7*24)) * time.Hour)
		completedAt := startedAt.Add(time.Duration(float64(shared.QuestionsPerSession)*averageTime) * time.Second)

		id, _ := uuid.NewV7()
		session := model.Session{
			ID:             id.String(),
			UserID:         studentID,
			Operation:      operation,
			Level:          1,
			TotalQuestions: shared.QuestionsPerSession,
			CorrectAnswers: correct,
			AverageTime:    averageTime,
			Status:         shared.SessionStatusCompleted,
			StartedAt:      startedAt,
			CompletedAt:    &completedAt,
		}

		if err := s.db.Create(&session).Error; err != nil {
			return err
		}

		if err := s.seedQuestions(&session); err != nil {
			return err
		}
	}

	return nil
}

func (s *SessionSeeder) seedQuestions(session *model.Session) error {
	questions := make([]model.Question, 0, session.TotalQuestions)

	for i := 0; i < session.TotalQuestions; i++ {
		num1 := rand.Intn(shared.MaxOperand + 1)
		num2 := rand.Intn(shared.MaxOperand + 1)

		var answer int
		switch session.Operation {
		case shared.OperationAddition:
			answer = num1 + num2
		case shared.OperationSubtraction:
			answer = num1 - num2
		case shared.OperationMultiplication:
			answer = num1 * num2
		case shared.OperationDivision:
			answer = num1
			num1 = num1 * num2
		}

		userAnswer := answer
		correct := i < session.CorrectAnswers
		if !correct {
			userAnswer = answer + 1 + rand.Intn(3)
		}

		id, _ := uuid.NewV7()
		questions = append(questions, model.Question{
			ID:         id.String(),
			SessionID:  session.ID,
			Operation:  session.Operation,
			Num1:       num1,
			Num2:       num2,
			UserAnswer: userAnswer,
			Correct:    correct,
			TimeSpent:  session.AverageTime,
			CreatedAt:  session.StartedAt,
		})
	}

	return s.db.CreateInBatches(questions, 100).Error
}
