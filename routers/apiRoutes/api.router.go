package apiRoutes

import (
	"github.com/gofiber/fiber/v2"

	contentController "academia/controllers/content"
	courseControllers "academia/controllers/course"
	registrationController "academia/controllers/registration"
	"academia/middleware"
	contentValidator "academia/validators/content"
	courseValidator "academia/validators/course"
	registrationValidator "academia/validators/registration"
)

// SetupAPIRoutes sets up the public and learner-facing API
func SetupAPIRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Public catalog and site content
	api.Get("/courses", courseControllers.GetAllCourses)
	api.Get("/courses/:slug", middleware.OptionalJWT, courseControllers.GetCourseBySlug)
	api.Get("/team", contentController.GetTeam)
	api.Get("/testimonials", contentController.GetTestimonials)
	api.Post("/contact", contentValidator.Contact(), contentController.SubmitContact)

	// Enrollment
	api.Post("/enroll", middleware.JWTMiddleware, courseValidator.Enroll(), courseControllers.EnrollInCourse)
	api.Get("/enrollments", middleware.JWTMiddleware, courseControllers.GetEnrollments)
	api.Patch("/enrollments/:id/progress", middleware.JWTMiddleware, courseValidator.UpdateProgress(), courseControllers.UpdateEnrollmentProgress)
	api.Delete("/enrollments/:id", middleware.JWTMiddleware, courseValidator.EnrollmentID(), courseControllers.Unenroll)

	// Section progress
	api.Post("/sections/:id/progress", middleware.JWTMiddleware, courseValidator.SectionProgress(), courseControllers.UpdateSectionProgress)
	api.Get("/courses/:course_id/progress", middleware.JWTMiddleware, courseValidator.CourseProgress(), courseControllers.GetCourseProgress)

	// Live-course registrations (guest submissions allowed)
	api.Post("/live-course-registrations", middleware.OptionalJWT, registrationValidator.Register(), registrationController.CreateLiveRegistration)
	api.Get("/live-course-registrations", middleware.JWTMiddleware, registrationValidator.ListRegistrations(), registrationController.GetLiveRegistrations)
}
