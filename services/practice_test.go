package services

import (
	"testing"
	"time"

	"github.com/mathfacts-fun/mathfacts_api/shared"
)

func TestGenerateQuestionAddition(t *testing.T) {
	for i := 0; i < 1000; i++ {
		q := GenerateQuestion(shared.OperationAddition)

		if q.Num1 < 0 || q.Num1 > shared.MaxOperand {
			t.Fatalf("num1 out of range: %d", q.Num1)
		}
		if q.Num2 < 0 || q.Num2 > shared.MaxOperand {
			t.Fatalf("num2 out of range: %d", q.Num2)
		}
		if q.Answer != q.Num1+q.Num2 {
			t.Fatalf("wrong answer for %d + %d: got %d", q.Num1, q.Num2, q.Answer)
		}
	}
}

func TestGenerateQuestionSubtraction(t *testing.T) {
	sawNegative := false
	for i := 0; i < 1000; i++ {
		q := GenerateQuestion(shared.OperationSubtraction)

		if q.Answer != q.Num1-q.Num2 {
			t.Fatalf("wrong answer for %d - %d: got %d", q.Num1, q.Num2, q.Answer)
		}
		if q.Answer < 0 {
			sawNegative = true
		}
	}

	// Operands are drawn independently, so negative answers must occur.
	if !sawNegative {
		t.Error("expected some negative subtraction answers over 1000 draws")
	}
}

func TestGenerateQuestionMultiplication(t *testing.T) {
	for i := 0; i < 1000; i++ {
		q := GenerateQuestion(shared.OperationMultiplication)

		if q.Answer != q.Num1*q.Num2 {
			t.Fatalf("wrong answer for %d * %d: got %d", q.Num1, q.Num2, q.Answer)
		}
	}
}

func TestGenerateQuestionDivision(t *testing.T) {
	for i := 0; i < 1000; i++ {
		q := GenerateQuestion(shared.OperationDivision)

		if q.Answer < 0 || q.Answer > shared.MaxOperand {
			t.Fatalf("quotient out of range: %d", q.Answer)
		}

		// The displayed dividend is always quotient * divisor, so every
		// prompt divides evenly.
		if q.Num1 != q.Answer*q.Num2 {
			t.Fatalf("dividend %d is not %d * %d", q.Num1, q.Answer, q.Num2)
		}

		if q.Num2 != 0 && q.Num1/q.Num2 != q.Answer {
			t.Fatalf("%d / %d != %d", q.Num1, q.Num2, q.Answer)
		}

		// Zero divisors are kept; the dividend collapses to zero.
		if q.Num2 == 0 && q.Num1 != 0 {
			t.Fatalf("zero divisor with nonzero dividend %d", q.Num1)
		}
	}
}

func TestGenerateQuestionUnknownOperation(t *testing.T) {
	q := GenerateQuestion("modulo")
	if q.Answer != 0 {
		t.Errorf("unknown operation answer = %d, want 0", q.Answer)
	}
}

func TestRunProgress(t *testing.T) {
	tests := []struct {
		name     string
		answered int
		want     int
	}{
		{"fresh run", 0, 0},
		{"three answered", 3, 30},
		{"nine answered", 9, 90},
		{"complete", 10, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.answered * 100 / shared.QuestionsPerSession
			if got != tt.want {
				t.Errorf("progress for %d answered = %d, want %d", tt.answered, got, tt.want)
			}
		})
	}
}

func TestToQuestionResponse(t *testing.T) {
	svc := &PracticeService{}
	run := &practiceRun{
		Operation: shared.OperationMultiplication,
		Current:   GeneratedQuestion{Num1: 7, Num2: 8, Answer: 56},
		Results:   make([]runResult, 3),
	}

	resp := svc.toQuestionResponse(run)

	if resp.QuestionNumber != 4 {
		t.Errorf("QuestionNumber = %d, want 4", resp.QuestionNumber)
	}
	if resp.Progress != 30 {
		t.Errorf("Progress = %d, want 30", resp.Progress)
	}
	if resp.Num1 != 7 || resp.Num2 != 8 {
		t.Errorf("operands = %d, %d, want 7, 8", resp.Num1, resp.Num2)
	}
	if resp.Operation != shared.OperationMultiplication {
		t.Errorf("Operation = %q", resp.Operation)
	}
}

func answeredResults(n, correct int) []runResult {
	results := make([]runResult, 0, n)
	for i := 0; i < n; i++ {
		results = append(results, runResult{
			Num1:       i,
			Num2:       2,
			UserAnswer: i * 2,
			Correct:    i < correct,
			TimeSpent:  float64(i + 1),
		})
	}
	return results
}

func TestBuildSessionRecord(t *testing.T) {
	tests := []struct {
		name               string
		results            []runResult
		status             string
		wantTotalQuestions int
		wantCorrect        int
		wantAverageTime    float64
		wantRows           int
	}{
		{
			name:               "cancel with no answers",
			results:            nil,
			status:             shared.SessionStatusCancelled,
			wantTotalQuestions: 1,
			wantCorrect:        0,
			wantAverageTime:    0,
			wantRows:           0,
		},
		{
			name:               "cancel after three answers",
			results:            answeredResults(3, 2),
			status:             shared.SessionStatusCancelled,
			wantTotalQuestions: 3,
			wantCorrect:        2,
			wantAverageTime:    2.0, // (1 + 2 + 3) / 3
			wantRows:           3,
		},
		{
			name:               "completed run",
			results:            answeredResults(10, 7),
			status:             shared.SessionStatusCompleted,
			wantTotalQuestions: 10,
			wantCorrect:        7,
			wantAverageTime:    5.5, // (1 + ... + 10) / 10
			wantRows:           10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			startedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
			completedAt := startedAt.Add(45 * time.Second)
			run := &practiceRun{
				Operation: shared.OperationMultiplication,
				StartedAt: startedAt.UnixMilli(),
				Results:   tt.results,
			}

			session, questions := buildSessionRecord("user-1", run, tt.status, completedAt)

			if session.Status != tt.status {
				t.Errorf("Status = %q, want %q", session.Status, tt.status)
			}
			if session.TotalQuestions != tt.wantTotalQuestions {
				t.Errorf("TotalQuestions = %d, want %d", session.TotalQuestions, tt.wantTotalQuestions)
			}
			if session.CorrectAnswers != tt.wantCorrect {
				t.Errorf("CorrectAnswers = %d, want %d", session.CorrectAnswers, tt.wantCorrect)
			}
			if session.AverageTime != tt.wantAverageTime {
				t.Errorf("AverageTime = %v, want %v", session.AverageTime, tt.wantAverageTime)
			}
			if len(questions) != tt.wantRows {
				t.Fatalf("question rows = %d, want %d", len(questions), tt.wantRows)
			}

			if !session.StartedAt.Equal(startedAt) {
				t.Errorf("StartedAt = %v, want %v", session.StartedAt, startedAt)
			}
			if session.CompletedAt == nil || !session.CompletedAt.Equal(completedAt) {
				t.Errorf("CompletedAt = %v, want %v", session.CompletedAt, completedAt)
			}
			if session.UserID != "user-1" {
				t.Errorf("UserID = %q", session.UserID)
			}
			if session.Level != 1 {
				t.Errorf("Level = %d, want 1", session.Level)
			}

			for i, q := range questions {
				if q.Operation != run.Operation {
					t.Errorf("question %d operation = %q, want %q", i, q.Operation, run.Operation)
				}
				if q.Num1 != tt.results[i].Num1 || q.UserAnswer != tt.results[i].UserAnswer {
					t.Errorf("question %d does not match submitted answer %d", i, i)
				}
				if q.Correct != tt.results[i].Correct {
					t.Errorf("question %d correct = %v", i, q.Correct)
				}
			}
		})
	}
}

func TestRoundTo(t *testing.T) {
	tests := []struct {
		value  float64
		places int
		want   float64
	}{
		{3.14159, 2, 3.14},
		{3.146, 2, 3.15},
		{2.0, 2, 2.0},
		{0.0, 2, 0.0},
	}

	for _, tt := range tests {
		if got := roundTo(tt.value, tt.places); got != tt.want {
			t.Errorf("roundTo(%v, %d) = %v, want %v", tt.value, tt.places, got, tt.want)
		}
	}
}
