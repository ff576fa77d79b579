package main

import (
	"github.com/mathfacts-fun/mathfacts_api/services"

	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// @title MathFacts API
// @version 1.0
// @description Math-facts practice backend: timed drills, dashboards and class groups.

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	err := godotenv.Load()
	if err != nil {
		log.Warn().Err(err).Msg("No .env file loaded")
	}

	ctx, err := context.NewCtx(
		&services.PostgresService{},
		&services.RedisService{},

		&services.JWTService{},
		&services.EmailService{},
		&services.MonitoringService{},
		&services.RateLimitService{},

		&services.AuthService{},
		&services.PracticeService{},
		&services.StatsService{},
		&services.GroupService{},

		&services.HttpService{},
	)
	if err != nil {
		log.Fatal().Err(err)
		return
	}

	err = ctx.Run()
	if err != nil {
		log.Fatal().Err(err)
		return
	}
}
