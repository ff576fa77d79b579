package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/mathfacts-fun/mathfacts_api/dto"
	"github.com/mathfacts-fun/mathfacts_api/shared"
)

type PracticeHandler struct {
	practiceSvc PracticeServiceInterface
}

func NewPracticeHandler(practiceSvc PracticeServiceInterface) *PracticeHandler {
	return &PracticeHandler{
		practiceSvc: practiceSvc,
	}
}

// @Summary Start a practice run
// @Description Begin a ten-question practice run for one operation. Replaces any run already in flight.
// @Tags practice
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param operation path string true "Operation" Enums(addition, subtraction, multiplication, division)
// @Success 200 {object} shared.Response{data=dto.QuestionResponse}
// @Router /api/v1/practice/{operation}/start [post]
func (h *PracticeHandler) Start(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)
	operation := c.Params("operation")

	resp, err := h.practiceSvc.StartRun(userID, operation)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Practice session started", resp)
}

// @Summary Answer the current question
// @Description Evaluate the answer to the active run's current question and return the next prompt, or the summary when the run completes
// @Tags practice
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param answerRequest body dto.AnswerRequest true "The student's answer"
// @Success 200 {object} shared.Response{data=dto.AnswerResponse}
// @Router /api/v1/practice/answer [post]
func (h *PracticeHandler) Answer(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.practiceSvc.SubmitAnswer(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}

// @Summary Cancel the active run
// @Description End the active run early. The answered questions are persisted as a cancelled session.
// @Tags practice
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.SessionSummary}
// @Router /api/v1/practice/cancel [post]
func (h *PracticeHandler) Cancel(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.practiceSvc.CancelRun(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Practice session cancelled", resp)
}

// @Summary Submit a finished session
// @Description Persist a client-orchestrated practice session and its question results in one request
// @Tags practice
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param submitRequest body dto.SubmitSessionRequest true "Session results"
// @Success 201 {object} shared.Response{data=dto.SubmitSessionResponse}
// @Router /api/v1/sessions [post]
func (h *PracticeHandler) SubmitSession(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.SubmitSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.practiceSvc.SubmitSession(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Session recorded", resp)
}
