package services

import (
	goContext "context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/mathfacts-fun/mathfacts_api/dto"
	"github.com/mathfacts-fun/mathfacts_api/model"
	"github.com/mathfacts-fun/mathfacts_api/shared"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
)

type PracticeService struct {
	context.DefaultService

	postgresSvc   *PostgresService
	redisSvc      *RedisService
	monitoringSvc *MonitoringService
}

const PRACTICE_SVC = "practice_svc"

// runTTL bounds how long an abandoned run lingers before Redis drops it.
const runTTL = 30 * time.Minute

func (svc PracticeService) Id() string {
	return PRACTICE_SVC
}

func (svc *PracticeService) Configure(ctx *context.Context) error {
	svc.postgresSvc = ctx.Service(POSTGRES_SVC).(*PostgresService)
	svc.redisSvc = ctx.Service(REDIS_SVC).(*RedisService)
	svc.monitoringSvc = ctx.Service(MONITORING_SVC).(*MonitoringService)
	return svc.DefaultService.Configure(ctx)
}

func (svc *PracticeService) Start() error {
	return nil
}

// ==================== QUESTION GENERATION ====================

// GeneratedQuestion is a prompt with its expected answer. Operands are drawn
// from [0, MaxOperand]; for division the drawn first operand becomes the
// quotient and the displayed first operand is the product, so every division
// prompt divides evenly.
type GeneratedQuestion struct {
	Num1   int
	Num2   int
	Answer int
}

func GenerateQuestion(operation string) GeneratedQuestion {
	num1 := rand.Intn(shared.MaxOperand + 1)
	num2 := rand.Intn(shared.MaxOperand + 1)

	switch operation {
	case shared.OperationAddition:
		return GeneratedQuestion{Num1: num1, Num2: num2, Answer: num1 + num2}
	case shared.OperationSubtraction:
		return GeneratedQuestion{Num1: num1, Num2: num2, Answer: num1 - num2}
	case shared.OperationMultiplication:
		return GeneratedQuestion{Num1: num1, Num2: num2, Answer: num1 * num2}
	case shared.OperationDivision:
		return GeneratedQuestion{Num1: num1 * num2, Num2: num2, Answer: num1}
	default:
		return GeneratedQuestion{Num1: num1, Num2: num2, Answer: 0}
	}
}

// ==================== RUN STATE ====================

// practiceRun is the per-user run state held in Redis while a session is in
// flight. Only one run per user exists at a time; starting a new one
// replaces any previous run.
type practiceRun struct {
	Operation string `json:"operation"`
	StartedAt int64  `json:"started_at"` // unix millis

	Current     GeneratedQuestion `json:"current"`
	CurrentSent int64             `json:"current_sent"` // unix millis, for per-question timing

	Results []runResult `json:"results"`
}

type runResult struct {
	Num1       int     `json:"num1"`
	Num2       int     `json:"num2"`
	UserAnswer int     `json:"user_answer"`
	Correct    bool    `json:"correct"`
	TimeSpent  float64 `json:"time_spent"` // seconds
}

func runKey(userID string) string {
	return fmt.Sprintf("practice:run:%s", userID)
}

// ==================== RUN OPERATIONS ====================

func (svc *PracticeService) StartRun(userID, operation string) (*dto.QuestionResponse, error) {
	if !shared.IsValidOperation(operation) {
		return nil, shared.NewBadRequestError("Unknown operation: " + operation)
	}

	now := time.Now()
	run := &practiceRun{
		Operation:   operation,
		StartedAt:   now.UnixMilli(),
		Current:     GenerateQuestion(operation),
		CurrentSent: now.UnixMilli(),
		Results:     []runResult{},
	}

	if err := svc.saveRun(userID, run); err != nil {
		return nil, err
	}

	return svc.toQuestionResponse(run), nil
}

func (svc *PracticeService) SubmitAnswer(userID string, req dto.AnswerRequest) (*dto.AnswerResponse, error) {
	run, err := svc.loadRun(userID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, shared.NewNotFoundError("No active practice session")
	}

	now := time.Now()
	correct := req.UserAnswer == run.Current.Answer
	svc.monitoringSvc.RecordPracticeAnswer(run.Operation, correct)
	run.Results = append(run.Results, runResult{
		Num1:       run.Current.Num1,
		Num2:       run.Current.Num2,
		UserAnswer: req.UserAnswer,
		Correct:    correct,
		TimeSpent:  now.Sub(time.UnixMilli(run.CurrentSent)).Seconds(),
	})

	resp := &dto.AnswerResponse{
		Correct:       correct,
		CorrectAnswer: run.Current.Answer,
		Progress:      len(run.Results) * 100 / shared.QuestionsPerSession,
	}

	if len(run.Results) >= shared.QuestionsPerSession {
		summary, err := svc.persistRun(userID, run, shared.SessionStatusCompleted)
		if err != nil {
			return nil, err
		}
		resp.Completed = true
		resp.Summary = summary
		return resp, nil
	}

	run.Current = GenerateQuestion(run.Operation)
	run.CurrentSent = now.UnixMilli()
	if err := svc.saveRun(userID, run); err != nil {
		return nil, err
	}

	resp.NextQuestion = svc.toQuestionResponse(run)
	return resp, nil
}

func (svc *PracticeService) CancelRun(userID string) (*dto.SessionSummary, error) {
	run, err := svc.loadRun(userID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, shared.NewNotFoundError("No active practice session")
	}

	return svc.persistRun(userID, run, shared.SessionStatusCancelled)
}

// buildSessionRecord materializes a run into its session row and question
// rows. Only answered questions become rows; a cancelled run still records
// at least one question so accuracy math never divides by zero downstream.
func buildSessionRecord(userID string, run *practiceRun, status string, completedAt time.Time) (*model.Session, []model.Question) {
	correct := 0
	totalTime := 0.0
	for _, r := range run.Results {
		if r.Correct {
			correct++
		}
		totalTime += r.TimeSpent
	}

	averageTime := 0.0
	if len(run.Results) > 0 {
		averageTime = totalTime / float64(len(run.Results))
	}

	totalQuestions := len(run.Results)
	if status == shared.SessionStatusCancelled && totalQuestions < 1 {
		totalQuestions = 1
	}

	session := &model.Session{
		UserID:         userID,
		Operation:      run.Operation,
		Level:          1,
		TotalQuestions: totalQuestions,
		CorrectAnswers: correct,
		AverageTime:    averageTime,
		Status:         status,
		StartedAt:      time.UnixMilli(run.StartedAt),
		CompletedAt:    &completedAt,
	}

	questions := make([]model.Question, 0, len(run.Results))
	for _, r := range run.Results {
		questions = append(questions, model.Question{
			Operation:  run.Operation,
			Num1:       r.Num1,
			Num2:       r.Num2,
			UserAnswer: r.UserAnswer,
			Correct:    r.Correct,
			TimeSpent:  r.TimeSpent,
		})
	}

	return session, questions
}

// persistRun writes the session and its answered questions to the database,
// then clears the run from Redis. The response is only built after the write
// succeeds, so a summary the client sees is always backed by a stored row.
func (svc *PracticeService) persistRun(userID string, run *practiceRun, status string) (*dto.SessionSummary, error) {
	session, questions := buildSessionRecord(userID, run, status, time.Now())

	created, err := svc.postgresSvc.Sessions().CreateSessionWithQuestions(session, questions)
	if err != nil {
		return nil, svc.postgresSvc.HandleError(err)
	}

	if err := svc.redisSvc.Delete(goContext.Background(), runKey(userID)); err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("Failed to clear practice run state")
	}

	svc.monitoringSvc.RecordPracticeSession(created.Operation, created.Status)

	return &dto.SessionSummary{
		SessionID:      created.ID,
		Operation:      created.Operation,
		Status:         created.Status,
		TotalQuestions: created.TotalQuestions,
		CorrectAnswers: created.CorrectAnswers,
		WrongAnswers:   created.TotalQuestions - created.CorrectAnswers,
		AverageTime:    roundTo(created.AverageTime, 2),
	}, nil
}

// ==================== BATCH SUBMISSION ====================

// SubmitSession persists a client-orchestrated practice run in one shot. The
// session row and its question rows are written before the response goes
// out.
func (svc *PracticeService) SubmitSession(userID string, req dto.SubmitSessionRequest) (*dto.SubmitSessionResponse, error) {
	if req.CorrectAnswers > req.TotalQuestions {
		return nil, shared.NewBadRequestError("correct_answers cannot exceed total_questions")
	}

	level := req.Level
	if level < 1 {
		level = 1
	}

	now := time.Now()
	session := &model.Session{
		UserID:         userID,
		Operation:      req.Operation,
		Level:          level,
		TotalQuestions: req.TotalQuestions,
		CorrectAnswers: req.CorrectAnswers,
		AverageTime:    req.AverageTime,
		Status:         req.Status,
		StartedAt:      now,
		CompletedAt:    &now,
	}

	questions := make([]model.Question, 0, len(req.QuestionResults))
	for _, q := range req.QuestionResults {
		questions = append(questions, model.Question{
			Operation:  req.Operation,
			Num1:       q.Num1,
			Num2:       q.Num2,
			UserAnswer: q.UserAnswer,
			Correct:    q.Correct,
			TimeSpent:  q.TimeSpent,
		})
	}

	created, err := svc.postgresSvc.Sessions().CreateSessionWithQuestions(session, questions)
	if err != nil {
		return nil, svc.postgresSvc.HandleError(err)
	}

	svc.monitoringSvc.RecordPracticeSession(created.Operation, created.Status)

	return &dto.SubmitSessionResponse{SessionID: created.ID}, nil
}

// ==================== HELPERS ====================

func (svc *PracticeService) toQuestionResponse(run *practiceRun) *dto.QuestionResponse {
	return &dto.QuestionResponse{
		Num1:           run.Current.Num1,
		Num2:           run.Current.Num2,
		Operation:      run.Operation,
		QuestionNumber: len(run.Results) + 1,
		Progress:       len(run.Results) * 100 / shared.QuestionsPerSession,
	}
}

func (svc *PracticeService) saveRun(userID string, run *practiceRun) error {
	if err := svc.redisSvc.Set(goContext.Background(), runKey(userID), run, runTTL); err != nil {
		return fmt.Errorf("failed to save practice run state: %w", err)
	}
	return nil
}

func (svc *PracticeService) loadRun(userID string) (*practiceRun, error) {
	var run practiceRun
	if err := svc.redisSvc.GetJSON(goContext.Background(), runKey(userID), &run); err != nil {
		return nil, fmt.Errorf("failed to load practice run state: %w", err)
	}
	if run.Operation == "" {
		return nil, nil
	}
	return &run, nil
}

func roundTo(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
