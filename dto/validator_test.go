package dto

import "testing"

func TestRegisterRequestValidate(t *testing.T) {
	valid := RegisterRequest{
		Email:    "teacher@example.com",
		Name:     "Jane Doe",
		Password: "SecurePass123!",
		Role:     "teacher",
	}

	tests := []struct {
		name    string
		mutate  func(r *RegisterRequest)
		wantErr bool
	}{
		{"valid teacher", func(r *RegisterRequest) {}, false},
		{"valid student", func(r *RegisterRequest) { r.Role = "student" }, false},
		{"missing email", func(r *RegisterRequest) { r.Email = "" }, true},
		{"malformed email", func(r *RegisterRequest) { r.Email = "not-an-email" }, true},
		{"name too short", func(r *RegisterRequest) { r.Name = "J" }, true},
		{"unknown role", func(r *RegisterRequest) { r.Role = "admin" }, true},
		{"password too short", func(r *RegisterRequest) { r.Password = "Ab1!" }, true},
		{"password missing uppercase", func(r *RegisterRequest) { r.Password = "securepass123!" }, true},
		{"password missing number", func(r *RegisterRequest) { r.Password = "SecurePass!" }, true},
		{"password missing special", func(r *RegisterRequest) { r.Password = "SecurePass123" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSubmitSessionRequestValidate(t *testing.T) {
	valid := SubmitSessionRequest{
		Operation:      "multiplication",
		Level:          1,
		TotalQuestions: 10,
		CorrectAnswers: 8,
		AverageTime:    3.41,
		Status:         "completed",
		QuestionResults: []QuestionResultPayload{
			{Num1: 7, Num2: 8, UserAnswer: 56, Correct: true, TimeSpent: 3.2},
		},
	}

	tests := []struct {
		name    string
		mutate  func(r *SubmitSessionRequest)
		wantErr bool
	}{
		{"valid completed", func(r *SubmitSessionRequest) {}, false},
		{"valid cancelled", func(r *SubmitSessionRequest) { r.Status = "cancelled" }, false},
		{"unknown operation", func(r *SubmitSessionRequest) { r.Operation = "modulo" }, true},
		{"unknown status", func(r *SubmitSessionRequest) { r.Status = "paused" }, true},
		{"zero questions", func(r *SubmitSessionRequest) { r.TotalQuestions = 0 }, true},
		{"no question results", func(r *SubmitSessionRequest) { r.QuestionResults = nil }, true},
		{"negative time in results", func(r *SubmitSessionRequest) {
			r.QuestionResults = []QuestionResultPayload{{Num1: 2, Num2: 3, TimeSpent: -1}}
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFormatValidationErrors(t *testing.T) {
	req := RegisterRequest{Email: "bad", Name: "J", Password: "weak", Role: "none"}
	err := req.Validate()
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	errs := FormatValidationErrors(err)
	if len(errs) == 0 {
		t.Fatal("expected formatted field errors")
	}

	for _, fe := range errs {
		if fe.Field == "" || fe.Message == "" {
			t.Errorf("incomplete field error: %+v", fe)
		}
	}
}

func TestCreateValidationErrorResponse(t *testing.T) {
	req := LoginRequest{}
	err := req.Validate()
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	resp := CreateValidationErrorResponse(err)
	if resp.Code != 400 {
		t.Errorf("Code = %d, want 400", resp.Code)
	}
	if resp.Message != "Validation failed" {
		t.Errorf("Message = %q", resp.Message)
	}
	if len(resp.Errors) != 2 {
		t.Errorf("expected 2 field errors, got %d", len(resp.Errors))
	}
}
