package adminRoutes

import (
	"github.com/gofiber/fiber/v2"

	contentController "academia/controllers/content"
	courseControllers "academia/controllers/course"
	registrationController "academia/controllers/registration"
	"academia/middleware"
	catalogValidator "academia/validators/catalog"
	contentValidator "academia/validators/content"
)

// SetupAdminRoutes sets up the admin console API
func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminOnly)

	// Courses
	admin.Post("/courses", catalogValidator.CreateCourse(), courseControllers.AdminCreateCourse)
	admin.Put("/courses/:id", catalogValidator.IDParam("id", "courseID"), catalogValidator.UpdateCourse(), courseControllers.AdminUpdateCourse)
	admin.Delete("/courses/:id", catalogValidator.IDParam("id", "courseID"), courseControllers.AdminDeleteCourse)

	// Modules
	admin.Post("/courses/:id/modules", catalogValidator.IDParam("id", "courseID"), catalogValidator.Module(), courseControllers.AdminCreateModule)
	admin.Put("/modules/:id", catalogValidator.IDParam("id", "moduleID"), catalogValidator.Module(), courseControllers.AdminUpdateModule)
	admin.Delete("/modules/:id", catalogValidator.IDParam("id", "moduleID"), courseControllers.AdminDeleteModule)

	// Sections
	admin.Post("/modules/:id/sections", catalogValidator.IDParam("id", "moduleID"), catalogValidator.Section(), courseControllers.AdminCreateSection)
	admin.Put("/sections/:id", catalogValidator.IDParam("id", "sectionID"), catalogValidator.Section(), courseControllers.AdminUpdateSection)
	admin.Delete("/sections/:id", catalogValidator.IDParam("id", "sectionID"), courseControllers.AdminDeleteSection)

	// Team
	admin.Post("/team", contentValidator.TeamMember(), contentController.AdminCreateTeamMember)
	admin.Put("/team/:id", catalogValidator.IDParam("id", "memberID"), contentValidator.TeamMember(), contentController.AdminUpdateTeamMember)
	admin.Delete("/team/:id", catalogValidator.IDParam("id", "memberID"), contentController.AdminDeleteTeamMember)

	// Testimonials
	admin.Post("/testimonials", contentValidator.Testimonial(), contentController.AdminCreateTestimonial)
	admin.Put("/testimonials/:id", catalogValidator.IDParam("id", "testimonialID"), contentValidator.Testimonial(), contentController.AdminUpdateTestimonial)
	admin.Delete("/testimonials/:id", catalogValidator.IDParam("id", "testimonialID"), contentController.AdminDeleteTestimonial)

	// Live-course registrations
	admin.Get("/courses/:id/registrations", catalogValidator.IDParam("id", "courseID"), registrationController.AdminGetRegistrations)
}
