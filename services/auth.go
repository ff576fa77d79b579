package services

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/mathfacts-fun/mathfacts_api/dto"
	"github.com/mathfacts-fun/mathfacts_api/model"
	"github.com/mathfacts-fun/mathfacts_api/shared"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	context.DefaultService

	postgresSvc *PostgresService
	jwtSvc      *JWTService
	emailSvc    *EmailService
}

const AUTH_SVC = "auth_svc"

func (svc AuthService) Id() string {
	return AUTH_SVC
}

func (svc *AuthService) Configure(ctx *context.Context) error {
	svc.postgresSvc = ctx.Service(POSTGRES_SVC).(*PostgresService)
	svc.jwtSvc = ctx.Service(JWT_SVC).(*JWTService)
	svc.emailSvc = ctx.Service(EMAIL_SVC).(*EmailService)
	return svc.DefaultService.Configure(ctx)
}

func (svc *AuthService) Start() error {
	return nil
}

func (svc *AuthService) Register(req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	available, err := svc.postgresSvc.Users().IsEmailAvailable(email)
	if err != nil {
		return nil, svc.postgresSvc.HandleError(err)
	}
	if !available {
		return nil, shared.NewConflictError("An account with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:          email,
		Name:           strings.TrimSpace(req.Name),
		Role:           req.Role,
		HashedPassword: string(hashedPassword),
	}

	created, err := svc.postgresSvc.Users().CreateUser(user)
	if err != nil {
		return nil, svc.postgresSvc.HandleError(err)
	}

	svc.logAuthEvent(created.ID, "register", "", "", true, "")

	go func() {
		if err := svc.emailSvc.SendWelcomeEmail(created.Email, created.Name); err != nil {
			log.WithError(err).WithField("user_id", created.ID).Warn("Failed to send welcome email")
		}
	}()

	return &dto.RegisterResponse{
		UserID:  created.ID,
		Message: "Registration successful",
	}, nil
}

func (svc *AuthService) Login(req dto.LoginRequest, clientIP, userAgent string) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := svc.postgresSvc.Users().GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			svc.logAuthEvent("", "login", clientIP, userAgent, false, "unknown email: "+email)
			return nil, shared.NewUnauthorizedError("Invalid email or password")
		}
		return nil, svc.postgresSvc.HandleError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		svc.logAuthEvent(user.ID, "login", clientIP, userAgent, false, "wrong password")
		return nil, shared.NewUnauthorizedError("Invalid email or password")
	}

	tokenPair, err := svc.jwtSvc.GenerateTokenPair(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	if err := svc.postgresSvc.Users().UpdateLastLogin(user.ID, clientIP); err != nil {
		log.WithError(err).WithField("user_id", user.ID).Warn("Failed to update last login")
	}

	svc.logAuthEvent(user.ID, "login", clientIP, userAgent, true, "")

	return &dto.LoginResponse{
		AccessToken: tokenPair.AccessToken,
		ExpiresIn:   tokenPair.ExpiresIn,
		User:        svc.toUserInfo(user),
	}, nil
}

// Logout is audit-only. Tokens are short-lived and stateless, so there is
// nothing server-side to invalidate.
func (svc *AuthService) Logout(userID, clientIP, userAgent string) error {
	svc.logAuthEvent(userID, "logout", clientIP, userAgent, true, "")
	return nil
}

func (svc *AuthService) GetCurrentUser(userID string) (*dto.UserInfo, error) {
	user, err := svc.postgresSvc.Users().GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("User not found")
		}
		return nil, svc.postgresSvc.HandleError(err)
	}

	info := svc.toUserInfo(user)
	return &info, nil
}

func (svc *AuthService) toUserInfo(user *model.User) dto.UserInfo {
	return dto.UserInfo{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		Role:        user.Role,
		CreatedAt:   user.CreatedAt,
		LastLoginAt: user.LastLoginAt,
	}
}

func (svc *AuthService) logAuthEvent(userID, action, ip, userAgent string, success bool, details string) {
	entry := &model.AuthAuditLog{
		UserID:    userID,
		Action:    action,
		IP:        ip,
		UserAgent: userAgent,
		Success:   success,
		Details:   details,
	}
	if err := svc.postgresSvc.Users().CreateAuthAuditLog(entry); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"user_id": userID,
			"action":  action,
		}).Warn("Failed to write auth audit log")
	}
}

// RequiredAuth verifies the bearer token and stores the caller's identity in
// request locals.
func (svc *AuthService) RequiredAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		token, err := svc.jwtSvc.ExtractTokenFromHeader(authHeader)
		if err != nil {
			return shared.ResponseJSON(c, http.StatusUnauthorized, "Unauthorized", err.Error())
		}

		claims, err := svc.jwtSvc.VerifyJWTToken(token)
		if err != nil {
			return shared.ResponseJSON(c, http.StatusUnauthorized, "Unauthorized", "Invalid JWT token")
		}

		if claims.UserID == "" {
			return shared.ResponseJSON(c, http.StatusUnauthorized, "Unauthorized", "Invalid user ID in token")
		}

		c.Locals(shared.UserID, claims.UserID)
		c.Locals(shared.UserRole, claims.Role)
		return c.Next()
	}
}

// RequireRole must run after RequiredAuth.
func (svc *AuthService) RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userRole, _ := c.Locals(shared.UserRole).(string)
		if userRole != role {
			return shared.ResponseJSON(c, http.StatusForbidden, "Forbidden", "Insufficient permissions")
		}
		return c.Next()
	}
}
