package contentValidator

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"

	"academia/middleware"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ContactRequest is the validated contact form payload
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// TeamMemberRequest is the validated admin team member payload
type TeamMemberRequest struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Bio         string `json:"bio"`
	PhotoURL    string `json:"photo_url"`
	LinkedinURL string `json:"linkedin_url"`
	OrderIndex  int    `json:"order_index"`
}

// TestimonialRequest is the validated admin testimonial payload
type TestimonialRequest struct {
	AuthorName  string `json:"author_name"`
	AuthorRole  string `json:"author_role"`
	Quote       string `json:"quote"`
	Rating      int    `json:"rating"`
	PhotoURL    string `json:"photo_url"`
	IsPublished *bool  `json:"is_published"`
}

// Contact validates the public contact form submission
func Contact() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ContactRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))
		reqData.Message = strings.TrimSpace(reqData.Message)

		if reqData.Name == "" {
			errors["name"] = "Name is required!"
		}
		if reqData.Email == "" {
			errors["email"] = "Email is required!"
		} else if !emailRegex.MatchString(reqData.Email) {
			errors["email"] = "Invalid email format!"
		}
		if reqData.Message == "" {
			errors["message"] = "Message is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContact", reqData)
		return c.Next()
	}
}

// TeamMember validates admin team member create/update request
func TeamMember() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TeamMemberRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		if reqData.Name == "" {
			errors["name"] = "Name is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTeamMember", reqData)
		return c.Next()
	}
}

// Testimonial validates admin testimonial create/update request
func Testimonial() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TestimonialRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.AuthorName = strings.TrimSpace(reqData.AuthorName)
		reqData.Quote = strings.TrimSpace(reqData.Quote)

		if reqData.AuthorName == "" {
			errors["author_name"] = "Author name is required!"
		}
		if reqData.Quote == "" {
			errors["quote"] = "Quote is required!"
		}
		if reqData.Rating < 1 || reqData.Rating > 5 {
			errors["rating"] = "Rating must be between 1 and 5!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTestimonial", reqData)
		return c.Next()
	}
}
