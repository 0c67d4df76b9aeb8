package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/HanishaChandrasekaran/placement-prep/backend/config"
	"github.com/HanishaChandrasekaran/placement-prep/backend/models"
	"github.com/HanishaChandrasekaran/placement-prep/backend/session"
	"github.com/HanishaChandrasekaran/placement-prep/backend/stats"
	"github.com/HanishaChandrasekaran/placement-prep/backend/utils"
)

type PerformanceController struct {
	Mgr *session.Manager
	Cfg *config.Config
}

func NewPerformanceController(mgr *session.Manager, cfg *config.Config) *PerformanceController {
	return &PerformanceController{Mgr: mgr, Cfg: cfg}
}

type RecordPerformanceInput struct {
	Type         string  `json:"type"`
	Language     string  `json:"language"`
	Score        float64 `json:"score"`
	MaxScore     float64 `json:"maxScore"`
	TimeTaken    float64 `json:"timeTaken"`
	PlatformName string  `json:"platformName"`
	Title        string  `json:"title"`
}

// Record godoc
// @Summary Record a performance entry
// @Description Appends a contest, interview or practice result to the user's history
// @Tags performance
// @Accept json
// @Produce json
// @Param entry body RecordPerformanceInput true "Performance entry"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /performance [post]
func (pc *PerformanceController) Record(c *fiber.Ctx) error {
	var input RecordPerformanceInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if !models.ValidPerformanceType(input.Type) {
		return utils.BadRequest(c, "Type must be contest, interview or practice")
	}
	if input.TimeTaken < 0 {
		return utils.BadRequest(c, "Time taken cannot be negative")
	}

	entry, err := pc.Mgr.RecordPerformance(models.PerformanceRecord{
		Type:         input.Type,
		Language:     input.Language,
		Score:        input.Score,
		MaxScore:     input.MaxScore,
		TimeTaken:    input.TimeTaken,
		PlatformName: input.PlatformName,
		Title:        input.Title,
	})
	if err != nil {
		if errors.Is(err, session.ErrNoActiveSession) {
			return utils.Unauthorized(c, "No active session")
		}
		return utils.InternalServerError(c, "Could not record performance")
	}
	return utils.Created(c, entry)
}

// List returns the user's performance history, optionally filtered by the
// type and language query parameters, most recent first.
func (pc *PerformanceController) List(c *fiber.Ctx) error {
	sess := pc.Mgr.Session()
	if sess == nil {
		return utils.Unauthorized(c, "No active session")
	}

	records := stats.List(sess.PerformanceHistory, c.Query("type"), c.Query("language"))
	return utils.Success(c, fiber.StatusOK, records)
}

// Stats returns summary statistics over the (optionally filtered) history.
// An empty match is not an error; it yields all-zero statistics.
func (pc *PerformanceController) Stats(c *fiber.Ctx) error {
	sess := pc.Mgr.Session()
	if sess == nil {
		return utils.Unauthorized(c, "No active session")
	}

	summary := stats.Compute(sess.PerformanceHistory, c.Query("type"), c.Query("language"))
	return utils.Success(c, fiber.StatusOK, summary)
}
