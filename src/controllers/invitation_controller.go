package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"survey-api/src/services/invitations"
	"survey-api/src/utils"
)

type InvitationController struct {
	svc *invitations.Service
}

func NewInvitationController(svc *invitations.Service) *InvitationController {
	return &InvitationController{svc: svc}
}

// InviteRespondents godoc
// @Summary      Invite respondents
// @Description  Send unique single-use survey links to a list of email addresses
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        id   path string   true "Survey ID"
// @Param        body body []string true "Email addresses"
// @Success      200  {object}  models.InviteResult
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /surveys/{id}/invitations [post]
func (ctrl *InvitationController) InviteRespondents(c *fiber.Ctx) error {
	surveyID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid survey id")
	}

	var emails []string
	if err := c.BodyParser(&emails); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: expected a list of email addresses")
	}

	result, err := ctrl.svc.Invite(c.Context(), surveyID, emails)
	if err != nil {
		if errors.Is(err, invitations.ErrSurveyNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to send invitations")
	}

	return c.JSON(result)
}
