package controllers

import (
	"math"
	"time"

	"github.com/gofiber/fiber/v2"

	"academia/middleware"
	courseModels "academia/models/course"
	"academia/store"
	courseValidator "academia/validators/course"
)

// recomputeEnrollmentProgress refreshes the enrollment's percentage from
// the section-progress ledger. Completed is derived here: exactly 100%
// sets it, anything less clears it.
func recomputeEnrollmentProgress(userID uint, courseID uint) {
	enrollment, err := store.Data.EnrollmentByUserAndCourse(userID, courseID)
	if err != nil {
		return
	}

	total, err := store.Data.CountSectionsByCourse(courseID)
	if err != nil {
		return
	}
	completed, err := store.Data.CountCompletedSections(userID, courseID)
	if err != nil {
		return
	}

	enrollment.TotalSections = int(total)
	enrollment.CompletedSections = int(completed)

	// Completed counts can briefly exceed the live section count while
	// catalog edits and ledger writes interleave, so clamp to 0-100.
	enrollment.Progress = 0
	if total > 0 {
		enrollment.Progress = int(math.Round(float64(completed) / float64(total) * 100))
		if enrollment.Progress > 100 {
			enrollment.Progress = 100
		}
	}

	if enrollment.Progress == 100 {
		if !enrollment.Completed {
			now := time.Now()
			enrollment.Completed = true
			enrollment.CompletedAt = &now
		}
	} else {
		enrollment.Completed = false
		enrollment.CompletedAt = nil
	}

	store.Data.UpdateEnrollment(enrollment)
}

func EnrollInCourse(c *fiber.Ctx) error {
	// Retrieve userId from JWT middleware
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedEnroll").(*courseValidator.EnrollRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	courseID := uint(reqData.CourseID)

	// Check if course exists and is published
	course, err := store.Data.CourseByID(courseID)
	if err != nil || !course.IsPublished {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
	}

	// Check if user is already enrolled
	if _, err := store.Data.EnrollmentByUserAndCourse(userID, courseID); err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
	}

	enrollment := courseModels.Enrollment{
		UserID:   userID,
		CourseID: courseID,
	}

	if err := store.Data.CreateEnrollment(&enrollment); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully!", enrollment)
}

func GetEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollments, err := store.Data.EnrollmentsByUser(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
		"total":       len(enrollments),
	})
}

// UpdateEnrollmentProgress is the bulk progress-update endpoint. The
// caller may supply an explicit completed flag, which is honored as-is;
// the section-toggle path instead derives it from the 100% threshold.
func UpdateEnrollmentProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(int)
	reqData, ok := c.Locals("validatedProgressUpdate").(*courseValidator.ProgressUpdateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	enrollment, err := store.Data.EnrollmentByID(uint(enrollmentID))
	if err != nil || enrollment.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	enrollment.Progress = *reqData.Progress
	if reqData.Completed != nil {
		enrollment.Completed = *reqData.Completed
		if enrollment.Completed && enrollment.CompletedAt == nil {
			now := time.Now()
			enrollment.CompletedAt = &now
		}
		if !enrollment.Completed {
			enrollment.CompletedAt = nil
		}
	}

	if err := store.Data.UpdateEnrollment(enrollment); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update enrollment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment updated successfully!", enrollment)
}

// Unenroll hard-deletes the enrollment and the user's section-progress
// history for that course
func Unenroll(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(int)

	enrollment, err := store.Data.EnrollmentByID(uint(enrollmentID))
	if err != nil || enrollment.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	if err := store.Data.DeleteEnrollment(enrollment.ID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to unenroll!", nil)
	}
	if err := store.Data.DeleteSectionProgressByUserAndCourse(userID, enrollment.CourseID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to clear progress history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Unenrolled successfully!", nil)
}
