package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"academia/middleware"
	courseModels "academia/models/course"
	"academia/store"
	courseValidator "academia/validators/course"
)

const autoCompleteThreshold = 95 // watched percentage treated as finished

// UpdateSectionProgress handles both ledger writes for a section: the
// manual completion toggle and the periodic video checkpoint. A
// checkpoint reaching the auto-complete threshold completes the section
// once; it never un-completes it.
func UpdateSectionProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	sectionID := c.Locals("sectionID").(int)
	reqData, ok := c.Locals("validatedSectionProgress").(*courseValidator.SectionProgressRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	section, err := store.Data.SectionByID(uint(sectionID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	// Check if user is enrolled in the course
	if _, err := store.Data.EnrollmentByUserAndCourse(userID, section.CourseID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	record, err := store.Data.SectionProgressByUserAndSection(userID, section.ID)
	if err != nil {
		record = &courseModels.SectionProgress{
			UserID:    userID,
			CourseID:  section.CourseID,
			SectionID: section.ID,
		}
		if err := store.Data.CreateSectionProgress(record); err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record progress!", nil)
		}
	}

	if reqData.VideoProgress != nil && *reqData.VideoProgress > record.VideoProgress {
		record.VideoProgress = *reqData.VideoProgress
	}

	if reqData.Completed != nil {
		// Manual toggle: un-marking keeps the video checkpoint so
		// playback can resume later
		if record.Completed {
			record.Completed = false
			record.CompletedAt = nil
		} else {
			now := time.Now()
			record.Completed = true
			record.CompletedAt = &now
		}
	} else if record.VideoProgress >= autoCompleteThreshold && !record.Completed {
		now := time.Now()
		record.Completed = true
		record.CompletedAt = &now
	}

	if err := store.Data.UpdateSectionProgress(record); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record progress!", nil)
	}

	recomputeEnrollmentProgress(userID, section.CourseID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section progress updated successfully!", record)
}

// GetCourseProgress returns the caller's full per-section ledger for a
// course, for progress-bar rendering and resuming playback.
func GetCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	if _, err := store.Data.CourseByID(uint(courseID)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	records, err := store.Data.SectionProgressByUserAndCourse(userID, uint(courseID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	enrollment, err := store.Data.EnrollmentByUserAndCourse(userID, uint(courseID))
	if err != nil {
		enrollment = nil
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"completed_sections": records,
		"enrollment":         enrollment,
	})
}
