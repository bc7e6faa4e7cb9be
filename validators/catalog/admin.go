package catalogValidator

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"academia/middleware"
	courseModels "academia/models/course"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// CourseRequest is the validated admin course create/update payload
type CourseRequest struct {
	Slug             string                          `json:"slug"`
	Title            string                          `json:"title"`
	ShortDescription string                          `json:"short_description"`
	Description      string                          `json:"description"`
	Level            string                          `json:"level"`
	Category         string                          `json:"category"`
	Duration         int64                           `json:"duration"`
	Instructor       string                          `json:"instructor"`
	ThumbnailURL     string                          `json:"thumbnail_url"`
	IsFeatured       *bool                           `json:"is_featured"`
	IsPopular        *bool                           `json:"is_popular"`
	IsNew            *bool                           `json:"is_new"`
	IsPublished      *bool                           `json:"is_published"`
	IsLive           *bool                           `json:"is_live"`
	LiveDetails      *courseModels.LiveCourseDetails `json:"live_details"`
}

// ModuleRequest is the validated admin module create/update payload
type ModuleRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int64  `json:"duration"`
	Difficulty  string `json:"difficulty"`
	Instructor  string `json:"instructor"`
	OrderIndex  int    `json:"order_index"`
}

// SectionRequest is the validated admin section create/update payload
type SectionRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	VideoURL   string `json:"video_url"`
	Duration   int    `json:"duration"`
	OrderIndex int    `json:"order_index"`
}

// IDParam validates a numeric path param and stores it under localKey
func IDParam(param, localKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params(param))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+param+"!", nil)
		}
		c.Locals(localKey, id)
		return c.Next()
	}
}

func validateCourseFields(reqData *CourseRequest, requireAll bool) map[string]string {
	errors := make(map[string]string)

	reqData.Slug = strings.TrimSpace(strings.ToLower(reqData.Slug))
	reqData.Title = strings.TrimSpace(reqData.Title)
	reqData.Level = strings.TrimSpace(reqData.Level)

	if reqData.Slug == "" {
		if requireAll {
			errors["slug"] = "Slug is required!"
		}
	} else if !slugRegex.MatchString(reqData.Slug) {
		errors["slug"] = "Slug may only contain lowercase letters, digits and hyphens!"
	}

	if reqData.Title == "" {
		if requireAll {
			errors["title"] = "Title is required!"
		}
	} else if len(reqData.Title) < 3 {
		errors["title"] = "Title must be at least 3 characters long!"
	}

	if reqData.Level != "" {
		validLevels := map[string]bool{"Principiante": true, "Intermedio": true, "Avanzado": true}
		if !validLevels[reqData.Level] {
			errors["level"] = "Level must be Principiante, Intermedio, or Avanzado!"
		}
	}

	if reqData.Duration < 0 {
		errors["duration"] = "Duration must not be negative!"
	}

	return errors
}

// CreateCourse validates admin course creation request
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validateCourseFields(reqData, true); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validates admin course update request
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validateCourseFields(reqData, false); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// Module validates admin module create/update request
func Module() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ModuleRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// Section validates admin section create/update request
func Section() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SectionRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.Duration < 0 {
			errors["duration"] = "Duration must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSection", reqData)
		return c.Next()
	}
}
