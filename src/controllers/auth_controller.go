package controllers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"survey-api/src/models"
	"survey-api/src/services/auth"
	"survey-api/src/utils"
)

var validateLogin = validator.New()

type AuthController struct {
	svc *auth.Service
}

func NewAuthController(svc *auth.Service) *AuthController {
	return &AuthController{svc: svc}
}

// Login godoc
// @Summary      Operator login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body models.LoginRequest true "Credentials"
// @Success      200  {object}  models.TokenResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/login [post]
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validateLogin.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Email and password are required")
	}

	tokens, err := ctrl.svc.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return utils.HandleError(c, fiber.StatusUnauthorized, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Login failed")
	}

	return c.JSON(tokens)
}

// Refresh godoc
// @Summary      Refresh access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body models.RefreshRequest true "Refresh token"
// @Success      200  {object}  models.TokenResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/refresh [post]
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	var req models.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	tokens, err := ctrl.svc.Refresh(c.Context(), req.AdminID, req.RefreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidRefresh) {
			return utils.HandleError(c, fiber.StatusUnauthorized, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Refresh failed")
	}

	return c.JSON(tokens)
}

// Logout godoc
// @Summary      Operator logout
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/logout [post]
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	adminID, _ := c.Locals("adminId").(string)
	token := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")

	if err := ctrl.svc.Logout(adminID, token); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Logout failed")
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}
