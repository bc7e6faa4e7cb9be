package controllers

import (
	"github.com/gofiber/fiber/v2"

	"academia/middleware"
	courseModels "academia/models/course"
	"academia/store"
	catalogValidator "academia/validators/catalog"
)

// syncModuleCount refreshes the denormalized module counter on the course
func syncModuleCount(courseID uint) {
	course, err := store.Data.CourseByID(courseID)
	if err != nil {
		return
	}
	modules, err := store.Data.ModulesByCourse(courseID)
	if err != nil {
		return
	}
	course.ModuleCount = len(modules)
	store.Data.UpdateCourse(course)
}

// AdminCreateModule creates a new module in a course
func AdminCreateModule(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	if _, err := store.Data.CourseByID(uint(courseID)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedModule").(*catalogValidator.ModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Get the next order index if not provided
	orderIndex := reqData.OrderIndex
	if orderIndex == 0 {
		modules, err := store.Data.ModulesByCourse(uint(courseID))
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
		}
		for _, m := range modules {
			if m.OrderIndex >= orderIndex {
				orderIndex = m.OrderIndex + 1
			}
		}
		if orderIndex == 0 {
			orderIndex = 1
		}
	}

	module := courseModels.Module{
		CourseID:    uint(courseID),
		Title:       reqData.Title,
		Description: reqData.Description,
		Duration:    reqData.Duration,
		Instructor:  reqData.Instructor,
		OrderIndex:  orderIndex,
	}
	if reqData.Difficulty != "" {
		module.Difficulty = reqData.Difficulty
	}

	if err := store.Data.CreateModule(&module); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	syncModuleCount(uint(courseID))

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// AdminUpdateModule updates an existing module
func AdminUpdateModule(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	module, err := store.Data.ModuleByID(uint(moduleID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	reqData, ok := c.Locals("validatedModule").(*catalogValidator.ModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		module.Title = reqData.Title
	}
	if reqData.Description != "" {
		module.Description = reqData.Description
	}
	if reqData.Duration > 0 {
		module.Duration = reqData.Duration
	}
	if reqData.Difficulty != "" {
		module.Difficulty = reqData.Difficulty
	}
	if reqData.Instructor != "" {
		module.Instructor = reqData.Instructor
	}
	if reqData.OrderIndex > 0 {
		module.OrderIndex = reqData.OrderIndex
	}

	if err := store.Data.UpdateModule(module); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", module)
}

// AdminDeleteModule removes a module. Its sections must be deleted first.
func AdminDeleteModule(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	module, err := store.Data.ModuleByID(uint(moduleID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	sections, err := store.Data.SectionsByModule(module.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}
	if len(sections) > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Module still has sections! Delete them first.", nil)
	}

	if err := store.Data.DeleteModule(module.ID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}

	syncModuleCount(module.CourseID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", nil)
}
