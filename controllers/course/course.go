package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"academia/middleware"
	courseModels "academia/models/course"
	"academia/store"
)

// ModuleWithSections is a module enriched with its ordered sections
type ModuleWithSections struct {
	courseModels.Module
	Sections []courseModels.Section `json:"sections"`
}

func parseBoolFlag(value string) *bool {
	switch value {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	}
	return nil
}

// GetAllCourses lists published courses with optional flag filters
func GetAllCourses(c *fiber.Ctx) error {
	filter := store.CourseFilter{
		Category: c.Query("category"),
		Level:    c.Query("level"),
		Featured: parseBoolFlag(c.Query("featured")),
		Popular:  parseBoolFlag(c.Query("popular")),
		Live:     parseBoolFlag(c.Query("live")),
	}

	courses, err := store.Data.Courses(filter)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"total":   len(courses),
	})
}

// GetCourseBySlug returns one course with its ordered modules and
// sections. When the caller is authenticated, is_enrolled is included.
func GetCourseBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course slug is required!", nil)
	}

	course, err := store.Data.CourseBySlug(slug)
	if err != nil || !course.IsPublished {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	modules, err := store.Data.ModulesByCourse(course.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	result := make([]ModuleWithSections, len(modules))
	for i, m := range modules {
		sections, err := store.Data.SectionsByModule(m.ID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sections!", nil)
		}
		result[i] = ModuleWithSections{Module: m, Sections: sections}
	}

	response := fiber.Map{
		"course":  course,
		"modules": result,
	}

	// Enrollment status for logged-in visitors
	if userID, ok := c.Locals("userId").(uint); ok {
		_, err := store.Data.EnrollmentByUserAndCourse(userID, course.ID)
		response["is_enrolled"] = err == nil
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", response)
}
