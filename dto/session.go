package dto

// ==================== PRACTICE RUN DTOs ====================

// QuestionResponse is a prompt shown to the student. The correct answer
// never leaves the server while a run is active.
type QuestionResponse struct {
	Num1           int    `json:"num1" example:"7"`
	Num2           int    `json:"num2" example:"8"`
	Operation      string `json:"operation" example:"multiplication"`
	QuestionNumber int    `json:"question_number" example:"1"` // 1-based
	Progress       int    `json:"progress" example:"0"`        // percent, 10 per answered question
}

type AnswerRequest struct {
	UserAnswer int `json:"user_answer" example:"56"`
}

func (a AnswerRequest) Validate() error {
	return GetValidator().Struct(a)
}

type AnswerResponse struct {
	Correct       bool              `json:"correct" example:"true"`
	CorrectAnswer int               `json:"correct_answer" example:"56"`
	Progress      int               `json:"progress" example:"10"`
	Completed     bool              `json:"completed" example:"false"`
	NextQuestion  *QuestionResponse `json:"next_question,omitempty"`
	Summary       *SessionSummary   `json:"summary,omitempty"`
}

// SessionSummary is returned once a run reaches a terminal state and the
// session row has been persisted.
type SessionSummary struct {
	SessionID      string  `json:"session_id" example:"0190cafe-babe-7000-8000-000000000002"`
	Operation      string  `json:"operation" example:"multiplication"`
	Status         string  `json:"status" example:"completed"`
	TotalQuestions int     `json:"total_questions" example:"10"`
	CorrectAnswers int     `json:"correct_answers" example:"8"`
	WrongAnswers   int     `json:"wrong_answers" example:"2"`
	AverageTime    float64 `json:"average_time" example:"3.41"`
}

// ==================== BATCH SUBMISSION DTOs ====================

// QuestionResultPayload is one answered question submitted by a
// client-orchestrated practice loop.
type QuestionResultPayload struct {
	Num1       int     `json:"num1" validate:"gte=0" example:"7"`
	Num2       int     `json:"num2" validate:"gte=0" example:"8"`
	UserAnswer int     `json:"user_answer" example:"56"`
	Correct    bool    `json:"correct" example:"true"`
	TimeSpent  float64 `json:"time_spent" validate:"gte=0" example:"3.2"`
}

type SubmitSessionRequest struct {
	Operation       string                  `json:"operation" validate:"required,oneof=addition subtraction multiplication division" example:"multiplication"`
	Level           int                     `json:"level" validate:"omitempty,gte=1" example:"1"`
	TotalQuestions  int                     `json:"total_questions" validate:"required,gte=1" example:"10"`
	CorrectAnswers  int                     `json:"correct_answers" validate:"gte=0" example:"8"`
	AverageTime     float64                 `json:"average_time" validate:"gte=0" example:"3.41"`
	Status          string                  `json:"status" validate:"required,oneof=completed cancelled" example:"completed"`
	QuestionResults []QuestionResultPayload `json:"question_results" validate:"required,min=1,dive"`
}

func (s SubmitSessionRequest) Validate() error {
	return GetValidator().Struct(s)
}

type SubmitSessionResponse struct {
	SessionID string `json:"session_id" example:"0190cafe-babe-7000-8000-000000000002"`
}

// ==================== STATS DTOs ====================

type OperationStats struct {
	Accuracy      int `json:"accuracy" example:"77"`      // percent, rounded
	AverageTime   int `json:"average_time" example:"3"`   // seconds, rounded
	TotalSessions int `json:"total_sessions" example:"12"`
}

// SerializedSession is a session row with timestamps normalized to
// ISO-8601 strings for display.
type SerializedSession struct {
	ID             string  `json:"id" example:"0190cafe-babe-7000-8000-000000000002"`
	Operation      string  `json:"operation" example:"addition"`
	Level          int     `json:"level" example:"1"`
	TotalQuestions int     `json:"total_questions" example:"10"`
	CorrectAnswers int     `json:"correct_answers" example:"8"`
	AverageTime    float64 `json:"average_time" example:"3.41"`
	Status         string  `json:"status" example:"completed"`
	StartedAt      string  `json:"started_at" example:"2024-01-15T10:30:00.000Z"`
	CompletedAt    string  `json:"completed_at" example:"2024-01-15T10:32:10.000Z"`
}

type SessionStats struct {
	ByOperation    map[string]OperationStats `json:"by_operation"`
	Overall        OperationStats            `json:"overall"`
	RecentSessions []SerializedSession       `json:"recent_sessions"`
}

// StudentProgressResponse backs the teacher's per-student progress view.
type StudentProgressResponse struct {
	StudentID       string              `json:"student_id" example:"0190cafe-babe-7000-8000-000000000003"`
	StudentName     string              `json:"student_name" example:"Sam Pupil"`
	TotalSessions   int                 `json:"total_sessions" example:"12"`
	AverageAccuracy int                 `json:"average_accuracy" example:"77"`
	AverageTime     int                 `json:"average_time" example:"3"`
	RecentSessions  []SerializedSession `json:"recent_sessions"`
}
