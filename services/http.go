package services

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	docs "github.com/mathfacts-fun/mathfacts_api/docs"
	"github.com/mathfacts-fun/mathfacts_api/services/handlers"
	"github.com/mathfacts-fun/mathfacts_api/shared"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	log "github.com/sirupsen/logrus"
)

type HttpService struct {
	context.DefaultService

	authSvc       *AuthService
	practiceSvc   *PracticeService
	statsSvc      *StatsService
	groupSvc      *GroupService
	rateLimitSvc  *RateLimitService
	monitoringSvc *MonitoringService

	port int
	app  *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	svc.authSvc = svc.Service(AUTH_SVC).(*AuthService)
	svc.practiceSvc = svc.Service(PRACTICE_SVC).(*PracticeService)
	svc.statsSvc = svc.Service(STATS_SVC).(*StatsService)
	svc.groupSvc = svc.Service(GROUP_SVC).(*GroupService)
	svc.rateLimitSvc = svc.Service(RATE_LIMIT_SVC).(*RateLimitService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)

	docs.SwaggerInfo.BasePath = ""

	app := fiber.New(fiber.Config{
		JSONEncoder:  shared.JSONEncoder,
		JSONDecoder:  shared.JSONDecoder,
		ErrorHandler: svc.errorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(MonitoringMiddleware(svc.monitoringSvc))
	app.Use(svc.rateLimitSvc.IPRateLimit())

	app.Get("/ping", svc.ping)
	app.Get("/swagger/*", swagger.HandlerDefault)

	svc.registerRoutes(app)

	app.Use(func(c *fiber.Ctx) error {
		return shared.ResponseNotFound(c)
	})

	svc.app = app

	log.WithField("port", svc.port).Info("HTTP server starting")
	return app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) Shutdown() {
	if svc.app != nil {
		_ = svc.app.Shutdown()
	}
}

func (svc *HttpService) registerRoutes(app *fiber.App) {
	authHandler := handlers.NewAuthHandler(svc.authSvc)
	practiceHandler := handlers.NewPracticeHandler(svc.practiceSvc)
	statsHandler := handlers.NewStatsHandler(svc.statsSvc)
	groupHandler := handlers.NewGroupHandler(svc.groupSvc)

	auth := svc.authSvc.RequiredAuth()
	teacherOnly := svc.authSvc.RequireRole(shared.RoleTeacher)

	v1 := app.Group("/api/v1")

	v1.Get("/ping", svc.ping)

	// Auth
	v1.Post("/register", svc.rateLimitSvc.RateLimit("register"), authHandler.Register)
	v1.Post("/login", svc.rateLimitSvc.RateLimit("login"), authHandler.Login)
	v1.Post("/logout", auth, authHandler.Logout)
	v1.Get("/me", auth, authHandler.Me)

	// Practice
	v1.Post("/practice/:operation/start", auth, svc.rateLimitSvc.RateLimit("practice_start"), practiceHandler.Start)
	v1.Post("/practice/answer", auth, practiceHandler.Answer)
	v1.Post("/practice/cancel", auth, practiceHandler.Cancel)
	v1.Post("/sessions", auth, svc.rateLimitSvc.RateLimit("session_submit"), practiceHandler.SubmitSession)

	// Dashboards
	v1.Get("/dashboard/student", auth, statsHandler.StudentDashboard)
	v1.Get("/dashboard/teacher", auth, teacherOnly, groupHandler.TeacherDashboard)

	// Groups
	v1.Post("/groups", auth, teacherOnly, groupHandler.CreateGroup)
	v1.Delete("/groups/:groupId", auth, teacherOnly, groupHandler.DeleteGroup)
	v1.Post("/groups/:groupId/members", auth, teacherOnly, groupHandler.AddMember)
	v1.Delete("/groups/:groupId/members/:studentId", auth, teacherOnly, groupHandler.RemoveMember)
	v1.Get("/groups/:groupId/members/:studentId/progress", auth, teacherOnly, groupHandler.MemberProgress)
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set("Cache-Control", "max-age=10")

	return shared.ResponseJSON(c, http.StatusOK, "Success", "pong")
}

// errorHandler renders AppErrors with their status and hides everything else
// behind a generic 500.
func (svc *HttpService) errorHandler(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	if appErr, ok := shared.GetAppError(err); ok {
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	log.WithError(err).WithFields(log.Fields{
		"method": c.Method(),
		"path":   c.Path(),
	}).Error("Unhandled request error")

	return shared.ResponseInternalError(c)
}
