package controllers

import (
	"github.com/gofiber/fiber/v2"

	"academia/middleware"
	courseModels "academia/models/course"
	"academia/store"
	catalogValidator "academia/validators/catalog"
)

// AdminCreateSection creates a new section in a module
func AdminCreateSection(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	module, err := store.Data.ModuleByID(uint(moduleID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	reqData, ok := c.Locals("validatedSection").(*catalogValidator.SectionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	orderIndex := reqData.OrderIndex
	if orderIndex == 0 {
		sections, err := store.Data.SectionsByModule(module.ID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create section!", nil)
		}
		for _, s := range sections {
			if s.OrderIndex >= orderIndex {
				orderIndex = s.OrderIndex + 1
			}
		}
		if orderIndex == 0 {
			orderIndex = 1
		}
	}

	section := courseModels.Section{
		CourseID:   module.CourseID,
		ModuleID:   module.ID,
		Title:      reqData.Title,
		Content:    reqData.Content,
		VideoURL:   reqData.VideoURL,
		Duration:   reqData.Duration,
		OrderIndex: orderIndex,
	}

	if err := store.Data.CreateSection(&section); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Section created successfully!", section)
}

// AdminUpdateSection updates an existing section
func AdminUpdateSection(c *fiber.Ctx) error {
	sectionID := c.Locals("sectionID").(int)

	section, err := store.Data.SectionByID(uint(sectionID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	reqData, ok := c.Locals("validatedSection").(*catalogValidator.SectionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		section.Title = reqData.Title
	}
	if reqData.Content != "" {
		section.Content = reqData.Content
	}
	if reqData.VideoURL != "" {
		section.VideoURL = reqData.VideoURL
	}
	if reqData.Duration > 0 {
		section.Duration = reqData.Duration
	}
	if reqData.OrderIndex > 0 {
		section.OrderIndex = reqData.OrderIndex
	}

	if err := store.Data.UpdateSection(section); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section updated successfully!", section)
}

// AdminDeleteSection removes a section
func AdminDeleteSection(c *fiber.Ctx) error {
	sectionID := c.Locals("sectionID").(int)

	if _, err := store.Data.SectionByID(uint(sectionID)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	if err := store.Data.DeleteSection(uint(sectionID)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete section!", nil)
	}

	// Progress rows for the removed section must stop counting toward
	// course completion
	if err := store.Data.DeleteSectionProgressBySection(uint(sectionID)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section deleted successfully!", nil)
}
