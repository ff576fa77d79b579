package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/mathfacts-fun/mathfacts_api/shared"
)

type StatsHandler struct {
	statsSvc StatsServiceInterface
}

func NewStatsHandler(statsSvc StatsServiceInterface) *StatsHandler {
	return &StatsHandler{
		statsSvc: statsSvc,
	}
}

// @Summary Student dashboard
// @Description Per-operation and overall accuracy and speed, plus the five most recent sessions
// @Tags stats
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.SessionStats}
// @Router /api/v1/dashboard/student [get]
func (h *StatsHandler) StudentDashboard(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.statsSvc.GetStudentDashboard(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}
