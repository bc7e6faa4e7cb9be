package registrationController

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"academia/middleware"
	courseModels "academia/models/course"
	"academia/notifier"
	"academia/store"
	registrationValidator "academia/validators/registration"
)

// CreateLiveRegistration records a registration for a scheduled/live
// course. Authenticated callers are deduplicated per course; guest
// submissions are accepted as-is. Email and spreadsheet fan-out runs
// after the row is persisted and never affects the response.
func CreateLiveRegistration(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegistration").(*registrationValidator.RegistrationRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := store.Data.CourseByID(uint(reqData.CourseID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if !course.IsLive {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course does not accept live registrations!", nil)
	}

	// Duplicate check applies to known users only
	var userID *uint
	if id, ok := c.Locals("userId").(uint); ok {
		existing, err := store.Data.RegistrationsByUserAndCourse(id, course.ID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process registration!", nil)
		}
		if len(existing) > 0 {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already registered for this course!", nil)
		}
		userID = &id
	}

	registration := courseModels.LiveCourseRegistration{
		CourseID:            course.ID,
		UserID:              userID,
		ReferenceCode:       uuid.NewString(),
		FirstName:           reqData.FirstName,
		LastName:            reqData.LastName,
		Email:               reqData.Email,
		PhoneNumber:         reqData.PhoneNumber,
		Age:                 reqData.Age,
		GuardianFirstName:   reqData.GuardianFirstName,
		GuardianLastName:    reqData.GuardianLastName,
		GuardianPhoneNumber: reqData.GuardianPhone,
		PreferredModality:   reqData.PreferredModality,
		HasLaptop:           *reqData.HasLaptop,
		RegisteredAt:        time.Now(),
	}

	if err := store.Data.CreateRegistration(&registration); err != nil {
		log.Printf("Error saving registration: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save registration!", nil)
	}

	// Best-effort fan-out, already decoupled from the response
	notifier.SendRegistrationEmails(course, &registration)
	notifier.AppendRegistrationRow(course, &registration)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Registered successfully!", fiber.Map{
		"registration": registration,
	})
}

// GetLiveRegistrations lists registrations for a (user, course) pair.
// The client uses it to detect "already registered" before submitting.
func GetLiveRegistrations(c *fiber.Ctx) error {
	callerID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	userID := c.Locals("queryUserID").(int)
	courseID := c.Locals("queryCourseID").(int)

	// Registrations carry contact details, so callers only see their own
	if uint(userID) != callerID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	regs, err := store.Data.RegistrationsByUserAndCourse(uint(userID), uint(courseID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch registrations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registrations fetched successfully!", fiber.Map{
		"registrations": regs,
		"total":         len(regs),
	})
}

// AdminGetRegistrations lists every registration for a course
func AdminGetRegistrations(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	if _, err := store.Data.CourseByID(uint(courseID)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	regs, err := store.Data.RegistrationsByCourse(uint(courseID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch registrations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registrations fetched successfully!", fiber.Map{
		"registrations": regs,
		"total":         len(regs),
	})
}
