package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"survey-api/src/models"
	"survey-api/src/services/surveys"
	"survey-api/src/utils"
)

type SurveyController struct {
	svc *surveys.Service
}

func NewSurveyController(svc *surveys.Service) *SurveyController {
	return &SurveyController{svc: svc}
}

// CreateSurvey godoc
// @Summary      Create a new survey
// @Description  Create a survey with questions, each question has 2-5 options
// @Tags         surveys
// @Accept       json
// @Produce      json
// @Param        body body models.CreateSurveyRequest true "Survey with questions and options"
// @Success      201  {object}  models.Survey
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /surveys [post]
func (ctrl *SurveyController) CreateSurvey(c *fiber.Ctx) error {
	var req models.CreateSurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	survey, err := ctrl.svc.Create(c.Context(), &req)
	if err != nil {
		if errors.Is(err, surveys.ErrInvalidSurvey) {
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to create survey")
	}

	return c.Status(fiber.StatusCreated).JSON(survey)
}

// GetSurveys godoc
// @Summary      List surveys
// @Description  List all surveys with invitation and submission counts
// @Tags         surveys
// @Produce      json
// @Success      200  {array}   models.SurveyListItem
// @Failure      500  {object}  models.ErrorResponse
// @Router       /surveys [get]
func (ctrl *SurveyController) GetSurveys(c *fiber.Ctx) error {
	items, err := ctrl.svc.List(c.Context())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to list surveys")
	}
	return c.JSON(items)
}

// GetSurveyByID godoc
// @Summary      Get a survey
// @Description  Get a survey with its questions and options
// @Tags         surveys
// @Produce      json
// @Param        id path string true "Survey ID"
// @Success      200  {object}  models.Survey
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /surveys/{id} [get]
func (ctrl *SurveyController) GetSurveyByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid survey id")
	}

	survey, err := ctrl.svc.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, surveys.ErrSurveyNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to get survey")
	}

	return c.JSON(survey)
}
