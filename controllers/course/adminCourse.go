package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"academia/middleware"
	courseModels "academia/models/course"
	"academia/store"
	catalogValidator "academia/validators/catalog"
)

// AdminCreateCourse creates a new course
func AdminCreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*catalogValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Slug must stay unique across the catalog
	if _, err := store.Data.CourseBySlug(reqData.Slug); err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A course with this slug already exists!", nil)
	}

	course := courseModels.Course{
		Slug:             reqData.Slug,
		Title:            reqData.Title,
		ShortDescription: reqData.ShortDescription,
		Description:      reqData.Description,
		Category:         reqData.Category,
		Duration:         reqData.Duration,
		Instructor:       reqData.Instructor,
		ThumbnailURL:     reqData.ThumbnailURL,
	}
	if reqData.Level != "" {
		course.Level = reqData.Level
	}
	if reqData.IsFeatured != nil {
		course.IsFeatured = *reqData.IsFeatured
	}
	if reqData.IsPopular != nil {
		course.IsPopular = *reqData.IsPopular
	}
	if reqData.IsNew != nil {
		course.IsNew = *reqData.IsNew
	}
	if reqData.IsPublished != nil {
		course.IsPublished = *reqData.IsPublished
	}
	if reqData.IsLive != nil {
		course.IsLive = *reqData.IsLive
	}
	if reqData.LiveDetails != nil {
		course.LiveDetails = datatypes.NewJSONType(*reqData.LiveDetails)
	}

	if err := store.Data.CreateCourse(&course); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminUpdateCourse updates an existing course
func AdminUpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	course, err := store.Data.CourseByID(uint(courseID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*catalogValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Slug != "" && reqData.Slug != course.Slug {
		if _, err := store.Data.CourseBySlug(reqData.Slug); err == nil {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "A course with this slug already exists!", nil)
		}
		course.Slug = reqData.Slug
	}
	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.ShortDescription != "" {
		course.ShortDescription = reqData.ShortDescription
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.Level != "" {
		course.Level = reqData.Level
	}
	if reqData.Category != "" {
		course.Category = reqData.Category
	}
	if reqData.Duration > 0 {
		course.Duration = reqData.Duration
	}
	if reqData.Instructor != "" {
		course.Instructor = reqData.Instructor
	}
	if reqData.ThumbnailURL != "" {
		course.ThumbnailURL = reqData.ThumbnailURL
	}
	if reqData.IsFeatured != nil {
		course.IsFeatured = *reqData.IsFeatured
	}
	if reqData.IsPopular != nil {
		course.IsPopular = *reqData.IsPopular
	}
	if reqData.IsNew != nil {
		course.IsNew = *reqData.IsNew
	}
	if reqData.IsPublished != nil {
		course.IsPublished = *reqData.IsPublished
	}
	if reqData.IsLive != nil {
		course.IsLive = *reqData.IsLive
	}
	if reqData.LiveDetails != nil {
		course.LiveDetails = datatypes.NewJSONType(*reqData.LiveDetails)
	}

	if err := store.Data.UpdateCourse(course); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// AdminDeleteCourse removes a course from the catalog
func AdminDeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	if _, err := store.Data.CourseByID(uint(courseID)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if err := store.Data.DeleteCourse(uint(courseID)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
