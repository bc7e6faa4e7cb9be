package courseValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"academia/middleware"
)

// SectionProgressRequest is the validated section-progress payload.
// Completed present means a manual completion toggle; VideoProgress
// alone is a playback checkpoint.
type SectionProgressRequest struct {
	Completed     *bool `json:"completed"`
	VideoProgress *int  `json:"video_progress"`
}

// SectionProgress validates the section :id param and the toggle/checkpoint body
func SectionProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Section ID!", nil)
		}

		reqData := new(SectionProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Completed == nil && reqData.VideoProgress == nil {
			errors["completed"] = "Either completed or video_progress is required!"
		}
		if reqData.VideoProgress != nil && (*reqData.VideoProgress < 0 || *reqData.VideoProgress > 100) {
			errors["video_progress"] = "Video progress must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("sectionID", id)
		c.Locals("validatedSectionProgress", reqData)
		return c.Next()
	}
}

// CourseProgress validates the :course_id path param
func CourseProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("course_id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", id)
		return c.Next()
	}
}
