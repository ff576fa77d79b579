package services

import (
	"testing"
	"time"

	"github.com/mathfacts-fun/mathfacts_api/model"
	"github.com/mathfacts-fun/mathfacts_api/shared"
)

func session(operation string, correct, total int, avgTime float64) model.Session {
	return model.Session{
		Operation:      operation,
		TotalQuestions: total,
		CorrectAnswers: correct,
		AverageTime:    avgTime,
		Status:         shared.SessionStatusCompleted,
	}
}

func TestCalculateAverageAccuracy(t *testing.T) {
	tests := []struct {
		name     string
		sessions []model.Session
		want     int
	}{
		{
			name:     "no sessions",
			sessions: nil,
			want:     0,
		},
		{
			name: "single perfect session",
			sessions: []model.Session{
				session(shared.OperationAddition, 10, 10, 2),
			},
			want: 100,
		},
		{
			name: "mean of per-session ratios",
			sessions: []model.Session{
				session(shared.OperationAddition, 8, 10, 2),
				session(shared.OperationAddition, 5, 10, 2),
				session(shared.OperationAddition, 10, 10, 2),
			},
			// (0.8 + 0.5 + 1.0) / 3 = 0.7666... -> 77
			want: 77,
		},
		{
			name: "short session weighs like a full one",
			sessions: []model.Session{
				session(shared.OperationDivision, 1, 1, 4),
				session(shared.OperationDivision, 0, 10, 4),
			},
			want: 50,
		},
		{
			name: "zero-question session contributes nothing",
			sessions: []model.Session{
				session(shared.OperationAddition, 0, 0, 0),
				session(shared.OperationAddition, 10, 10, 2),
			},
			// 0/undefined skipped in the sum, but still counted in the mean
			want: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateAverageAccuracy(tt.sessions); got != tt.want {
				t.Errorf("CalculateAverageAccuracy() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCalculateAverageAccuracyOrderInvariant(t *testing.T) {
	a := []model.Session{
		session(shared.OperationAddition, 8, 10, 2),
		session(shared.OperationAddition, 5, 10, 2),
		session(shared.OperationAddition, 10, 10, 2),
	}
	b := []model.Session{a[2], a[0], a[1]}

	if CalculateAverageAccuracy(a) != CalculateAverageAccuracy(b) {
		t.Error("accuracy depends on session order")
	}
}

func TestCalculateAverageTime(t *testing.T) {
	tests := []struct {
		name     string
		sessions []model.Session
		want     int
	}{
		{"no sessions", nil, 0},
		{
			"rounds to whole seconds",
			[]model.Session{
				session(shared.OperationAddition, 8, 10, 2.4),
				session(shared.OperationAddition, 8, 10, 3.2),
			},
			// (2.4 + 3.2) / 2 = 2.8 -> 3
			3,
		},
		{
			"rounds down",
			[]model.Session{
				session(shared.OperationAddition, 8, 10, 2.2),
			},
			2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateAverageTime(tt.sessions); got != tt.want {
				t.Errorf("CalculateAverageTime() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStatsByOperation(t *testing.T) {
	sessions := []model.Session{
		session(shared.OperationAddition, 8, 10, 2),
		session(shared.OperationAddition, 6, 10, 4),
		session(shared.OperationMultiplication, 10, 10, 1.5),
	}

	stats := StatsByOperation(sessions)

	if len(stats) != len(shared.Operations) {
		t.Fatalf("expected %d buckets, got %d", len(shared.Operations), len(stats))
	}

	add := stats[shared.OperationAddition]
	if add.TotalSessions != 2 {
		t.Errorf("addition TotalSessions = %d, want 2", add.TotalSessions)
	}
	if add.Accuracy != 70 {
		t.Errorf("addition Accuracy = %d, want 70", add.Accuracy)
	}
	if add.AverageTime != 3 {
		t.Errorf("addition AverageTime = %d, want 3", add.AverageTime)
	}

	mul := stats[shared.OperationMultiplication]
	if mul.Accuracy != 100 || mul.TotalSessions != 1 {
		t.Errorf("multiplication = %+v", mul)
	}

	// Unpracticed operations still appear, zeroed.
	for _, op := range []string{shared.OperationSubtraction, shared.OperationDivision} {
		got := stats[op]
		if got.Accuracy != 0 || got.AverageTime != 0 || got.TotalSessions != 0 {
			t.Errorf("%s bucket = %+v, want zeroes", op, got)
		}
	}
}

func TestStatsByOperationEmpty(t *testing.T) {
	stats := StatsByOperation(nil)

	if len(stats) != len(shared.Operations) {
		t.Fatalf("expected %d buckets, got %d", len(shared.Operations), len(stats))
	}
	for op, got := range stats {
		if got.Accuracy != 0 || got.AverageTime != 0 || got.TotalSessions != 0 {
			t.Errorf("%s bucket = %+v, want zeroes", op, got)
		}
	}
}

func TestOverallStats(t *testing.T) {
	sessions := []model.Session{
		session(shared.OperationAddition, 8, 10, 2),
		session(shared.OperationDivision, 5, 10, 4),
	}

	got := OverallStats(sessions)

	if got.TotalSessions != 2 {
		t.Errorf("TotalSessions = %d, want 2", got.TotalSessions)
	}
	if got.Accuracy != 65 {
		t.Errorf("Accuracy = %d, want 65", got.Accuracy)
	}
	if got.AverageTime != 3 {
		t.Errorf("AverageTime = %d, want 3", got.AverageTime)
	}
}

func TestSerializeSessions(t *testing.T) {
	started := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	completed := started.Add(2 * time.Minute)

	s := session(shared.OperationAddition, 8, 10, 3.41)
	s.ID = "abc"
	s.Level = 1
	s.StartedAt = started
	s.CompletedAt = &completed

	open := session(shared.OperationDivision, 3, 10, 2)
	open.StartedAt = started

	out := SerializeSessions([]model.Session{s, open})

	if len(out) != 2 {
		t.Fatalf("expected 2 serialized sessions, got %d", len(out))
	}

	if out[0].StartedAt != "2024-01-15T10:30:00.000Z" {
		t.Errorf("StartedAt = %q", out[0].StartedAt)
	}
	if out[0].CompletedAt != "2024-01-15T10:32:00.000Z" {
		t.Errorf("CompletedAt = %q", out[0].CompletedAt)
	}
	if out[0].ID != "abc" || out[0].CorrectAnswers != 8 {
		t.Errorf("serialized row = %+v", out[0])
	}

	// A session without a completion time serializes it as empty.
	if out[1].CompletedAt != "" {
		t.Errorf("open CompletedAt = %q, want empty", out[1].CompletedAt)
	}
}
