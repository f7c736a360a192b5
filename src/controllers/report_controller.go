package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"survey-api/src/services/reports"
	"survey-api/src/utils"
)

type ReportController struct {
	svc *reports.Service
}

func NewReportController(svc *reports.Service) *ReportController {
	return &ReportController{svc: svc}
}

// GetSummaryReport godoc
// @Summary      Survey summary report
// @Description  Per-option counts/percentages and overall response rate
// @Tags         reports
// @Produce      json
// @Param        id path string true "Survey ID"
// @Success      200  {object}  models.SummaryReport
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /surveys/{id}/report [get]
func (ctrl *ReportController) GetSummaryReport(c *fiber.Ctx) error {
	surveyID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid survey id")
	}

	report, err := ctrl.svc.Summary(c.Context(), surveyID)
	if err != nil {
		if errors.Is(err, reports.ErrSurveyNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to build report")
	}

	return c.JSON(report)
}

// GetDetailedReport godoc
// @Summary      Survey detailed report
// @Description  Per-respondent answers grouped by email
// @Tags         reports
// @Produce      json
// @Param        id path string true "Survey ID"
// @Success      200  {array}   models.RespondentReport
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /surveys/{id}/report/details [get]
func (ctrl *ReportController) GetDetailedReport(c *fiber.Ctx) error {
	surveyID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid survey id")
	}

	report, err := ctrl.svc.Details(c.Context(), surveyID)
	if err != nil {
		if errors.Is(err, reports.ErrSurveyNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to build report")
	}

	return c.JSON(report)
}
