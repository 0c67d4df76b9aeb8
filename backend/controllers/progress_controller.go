package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/HanishaChandrasekaran/placement-prep/backend/config"
	"github.com/HanishaChandrasekaran/placement-prep/backend/session"
	"github.com/HanishaChandrasekaran/placement-prep/backend/utils"
)

type ProgressController struct {
	Mgr *session.Manager
	Cfg *config.Config
}

func NewProgressController(mgr *session.Manager, cfg *config.Config) *ProgressController {
	return &ProgressController{Mgr: mgr, Cfg: cfg}
}

// GetProgress returns the per-language completion percentages.
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	sess := pc.Mgr.Session()
	if sess == nil {
		return utils.Unauthorized(c, "No active session")
	}
	return utils.Success(c, fiber.StatusOK, sess.Progress)
}

type SetProgressInput struct {
	Progress int `json:"progress"`
}

// SetProgress records the completion percentage for the language in the path.
func (pc *ProgressController) SetProgress(c *fiber.Ctx) error {
	languageID := c.Params("language")

	var input SetProgressInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	user, err := pc.Mgr.SetProgress(languageID, input.Progress)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrProgressRange):
			return utils.BadRequest(c, "Progress must be between 0 and 100")
		case errors.Is(err, session.ErrNoActiveSession):
			return utils.Unauthorized(c, "No active session")
		}
		return utils.InternalServerError(c, "Could not update progress")
	}
	return utils.Success(c, fiber.StatusOK, user.Progress)
}

// CompleteItem marks a roadmap item as completed. Repeating a completion is
// accepted and changes nothing.
func (pc *ProgressController) CompleteItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	user, err := pc.Mgr.MarkCompleted(itemID)
	if err != nil {
		if errors.Is(err, session.ErrNoActiveSession) {
			return utils.Unauthorized(c, "No active session")
		}
		return utils.InternalServerError(c, "Could not record completion")
	}
	return utils.Success(c, fiber.StatusOK, user.CompletedCourses)
}

// GetCompleted returns the completed roadmap item ids.
func (pc *ProgressController) GetCompleted(c *fiber.Ctx) error {
	sess := pc.Mgr.Session()
	if sess == nil {
		return utils.Unauthorized(c, "No active session")
	}
	return utils.Success(c, fiber.StatusOK, sess.CompletedCourses)
}
