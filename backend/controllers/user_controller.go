package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/HanishaChandrasekaran/placement-prep/backend/catalog"
	"github.com/HanishaChandrasekaran/placement-prep/backend/config"
	"github.com/HanishaChandrasekaran/placement-prep/backend/models"
	"github.com/HanishaChandrasekaran/placement-prep/backend/session"
	"github.com/HanishaChandrasekaran/placement-prep/backend/utils"
)

type UserController struct {
	Mgr *session.Manager
	Cfg *config.Config
}

func NewUserController(mgr *session.Manager, cfg *config.Config) *UserController {
	return &UserController{Mgr: mgr, Cfg: cfg}
}

// GetSession returns the active session record and the loading flag. The
// client router decides between onboarding and dashboard from isNewUser.
func (uc *UserController) GetSession(c *fiber.Ctx) error {
	sess := uc.Mgr.Session()
	if sess == nil {
		return utils.Unauthorized(c, "No active session")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"user":    sess,
		"loading": uc.Mgr.Loading(),
	})
}

// GetProfile godoc
// @Summary Get user profile
// @Description Returns the authenticated user's profile data
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/profile [get]
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	sess := uc.Mgr.Session()
	if sess == nil {
		return utils.Unauthorized(c, "No active session")
	}
	return utils.Success(c, fiber.StatusOK, sess)
}

type UpdateProfileInput struct {
	Name *string `json:"name"`
}

// UpdateProfile godoc
// @Summary Update user profile
// @Description Merges the given fields into the authenticated user's profile
// @Tags users
// @Accept json
// @Produce json
// @Param input body UpdateProfileInput true "Profile update data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/profile [put]
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	var input UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	user, err := uc.Mgr.UpdateProfile(session.ProfileUpdate{Name: input.Name})
	if err != nil {
		if errors.Is(err, session.ErrNoActiveSession) {
			return utils.Unauthorized(c, "No active session")
		}
		return utils.InternalServerError(c, "Could not update profile")
	}
	return utils.Success(c, fiber.StatusOK, user)
}

type PreferencesInput struct {
	Year      string   `json:"year"`
	Branch    string   `json:"branch"`
	Languages []string `json:"languages"`
}

// UpdatePreferences stores the onboarding choices. A non-empty language list
// completes onboarding and clears isNewUser.
func (uc *UserController) UpdatePreferences(c *fiber.Ctx) error {
	var input PreferencesInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if len(input.Languages) == 0 {
		return utils.BadRequest(c, "Select at least one programming language")
	}
	for _, id := range input.Languages {
		if !catalog.KnownLanguage(id) {
			return utils.BadRequest(c, "Unknown language: "+id)
		}
	}

	onboarded := false
	user, err := uc.Mgr.UpdateProfile(session.ProfileUpdate{
		Preferences: &models.UserPreferences{
			Year:      input.Year,
			Branch:    input.Branch,
			Languages: input.Languages,
		},
		IsNewUser: &onboarded,
	})
	if err != nil {
		if errors.Is(err, session.ErrNoActiveSession) {
			return utils.Unauthorized(c, "No active session")
		}
		return utils.InternalServerError(c, "Could not save preferences")
	}
	return utils.Success(c, fiber.StatusOK, user)
}
