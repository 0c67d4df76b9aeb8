package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/HanishaChandrasekaran/placement-prep/backend/config"
	"github.com/HanishaChandrasekaran/placement-prep/backend/session"
	"github.com/HanishaChandrasekaran/placement-prep/backend/utils"
)

type AuthController struct {
	Mgr *session.Manager
	Cfg *config.Config
}

func NewAuthController(mgr *session.Manager, cfg *config.Config) *AuthController {
	return &AuthController{Mgr: mgr, Cfg: cfg}
}

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register godoc
// @Summary Register a new user
// @Description Creates a new account and opens a session for it
// @Tags auth
// @Accept json
// @Produce json
// @Param user body RegisterInput true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Email == "" || input.Password == "" {
		return utils.BadRequest(c, "Email and password are required")
	}

	user, err := ac.Mgr.Register(input.Email, input.Password, input.Name)
	if err != nil {
		if errors.Is(err, session.ErrDuplicateEmail) {
			return utils.Conflict(c, "User with this email already exists")
		}
		return utils.InternalServerError(c, "Could not create user")
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Login godoc
// @Summary Log in
// @Description Opens a session for the matching account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginInput true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	user, err := ac.Mgr.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			return utils.Unauthorized(c, "Invalid credentials")
		}
		return utils.InternalServerError(c, "Could not log in")
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Logout godoc
// @Summary Log out
// @Description Clears the active session; the account itself is kept
// @Tags auth
// @Produce json
// @Success 204
// @Router /auth/logout [post]
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	if err := ac.Mgr.Logout(); err != nil {
		return utils.InternalServerError(c, "Could not log out")
	}
	return utils.NoContent(c)
}
