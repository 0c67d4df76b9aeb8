package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HanishaChandrasekaran/placement-prep/backend/catalog"
	"github.com/HanishaChandrasekaran/placement-prep/backend/config"
	"github.com/HanishaChandrasekaran/placement-prep/backend/utils"
)

type CatalogController struct {
	Cfg *config.Config
}

func NewCatalogController(cfg *config.Config) *CatalogController {
	return &CatalogController{Cfg: cfg}
}

// ListLanguages returns the supported programming languages.
func (cc *CatalogController) ListLanguages(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, catalog.Languages())
}

// GetRoadmap returns the curriculum roadmap for one language.
func (cc *CatalogController) GetRoadmap(c *fiber.Ctx) error {
	languageID := c.Params("id")
	sections, ok := catalog.Roadmap(languageID)
	if !ok {
		return utils.NotFound(c, "No roadmap for language: "+languageID)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"language": languageID,
		"sections": sections,
		"modules":  catalog.ModuleCount(languageID),
	})
}

// GetResources returns the curated resources for one language. With a module
// query parameter, only resources tied to that roadmap item are returned.
func (cc *CatalogController) GetResources(c *fiber.Ctx) error {
	languageID := c.Params("id")
	list, ok := catalog.Resources(languageID)
	if !ok {
		return utils.NotFound(c, "No resources for language: "+languageID)
	}
	if moduleID := c.Query("module"); moduleID != "" {
		list = catalog.ModuleResources(languageID, moduleID)
	}
	return utils.Success(c, fiber.StatusOK, list)
}
