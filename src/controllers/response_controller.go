package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"survey-api/src/services/responses"
	"survey-api/src/utils"
)

type ResponseController struct {
	svc *responses.Service
}

func NewResponseController(svc *responses.Service) *ResponseController {
	return &ResponseController{svc: svc}
}

// GetSurveyForResponse godoc
// @Summary      Get survey for a respondent
// @Description  Fetch the survey behind an unused unique link token
// @Tags         responses
// @Produce      json
// @Param        token path string true "Unique link token"
// @Success      200  {object}  models.SurveyForResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /surveys/respond/{token} [get]
func (ctrl *ResponseController) GetSurveyForResponse(c *fiber.Ctx) error {
	result, err := ctrl.svc.GetSurveyForResponse(c.Context(), c.Params("token"))
	if err != nil {
		if errors.Is(err, responses.ErrInvitationNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Invalid or already used survey link")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to load survey")
	}
	return c.JSON(result)
}

// SubmitResponse godoc
// @Summary      Submit survey answers
// @Description  Record answers for an unused unique link, one per answered question
// @Tags         responses
// @Accept       json
// @Produce      json
// @Param        token path string            true "Unique link token"
// @Param        body  body map[string]string true "Mapping questionId → optionId"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /surveys/respond/{token} [post]
func (ctrl *ResponseController) SubmitResponse(c *fiber.Ctx) error {
	var answers map[string]string
	if err := c.BodyParser(&answers); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	err := ctrl.svc.Submit(c.Context(), c.Params("token"), answers)
	if err != nil {
		switch {
		case errors.Is(err, responses.ErrInvitationNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, "Invalid survey link")
		case errors.Is(err, responses.ErrAlreadySubmitted):
			return utils.HandleError(c, fiber.StatusConflict, "Survey link already used")
		case errors.Is(err, responses.ErrNoAnswers), errors.Is(err, responses.ErrInvalidAnswer):
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to submit response")
		}
	}

	return c.JSON(fiber.Map{"message": "Thank you for completing the survey!"})
}
