package services

import (
	"testing"
	"time"
)

func newTestJWTService() *JWTService {
	return &JWTService{
		AccessTokenDuration: time.Hour,
		jwtSecretKey:        "test-secret",
	}
}

func TestJWTRoundTrip(t *testing.T) {
	svc := newTestJWTService()

	token, err := svc.ToJWT("user-1", "student")
	if err != nil {
		t.Fatalf("ToJWT() error = %v", err)
	}

	claims, err := svc.VerifyJWTToken(token)
	if err != nil {
		t.Fatalf("VerifyJWTToken() error = %v", err)
	}

	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q, want user-1", claims.UserID)
	}
	if claims.Role != "student" {
		t.Errorf("Role = %q, want student", claims.Role)
	}
}

func TestVerifyJWTTokenRejectsWrongKey(t *testing.T) {
	svc := newTestJWTService()

	token, err := svc.ToJWT("user-1", "teacher")
	if err != nil {
		t.Fatalf("ToJWT() error = %v", err)
	}

	other := &JWTService{
		AccessTokenDuration: time.Hour,
		jwtSecretKey:        "different-secret",
	}

	if _, err := other.VerifyJWTToken(token); err == nil {
		t.Error("expected verification with a different key to fail")
	}
}

func TestVerifyJWTTokenRejectsExpired(t *testing.T) {
	svc := &JWTService{
		AccessTokenDuration: -time.Hour,
		jwtSecretKey:        "test-secret",
	}

	token, err := svc.ToJWT("user-1", "student")
	if err != nil {
		t.Fatalf("ToJWT() error = %v", err)
	}

	if _, err := svc.VerifyJWTToken(token); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestVerifyJWTTokenRejectsGarbage(t *testing.T) {
	svc := newTestJWTService()

	if _, err := svc.VerifyJWTToken("not.a.token"); err == nil {
		t.Error("expected garbage token to be rejected")
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	svc := newTestJWTService()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid bearer", "Bearer abc123", "abc123", false},
		{"missing header", "", "", true},
		{"wrong scheme", "Basic abc123", "", true},
		{"bare token", "abc123", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ExtractTokenFromHeader(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractTokenFromHeader(%q) error = %v, wantErr %v", tt.header, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractTokenFromHeader(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}
