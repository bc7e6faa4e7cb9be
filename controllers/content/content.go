package contentController

import (
	"github.com/gofiber/fiber/v2"

	"academia/middleware"
	"academia/models"
	"academia/notifier"
	"academia/store"
	contentValidator "academia/validators/content"
)

// GetTeam lists team members for the public site
func GetTeam(c *fiber.Ctx) error {
	team, err := store.Data.TeamMembers()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch team!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Team fetched successfully!", fiber.Map{"team": team})
}

// GetTestimonials lists published testimonials
func GetTestimonials(c *fiber.Ctx) error {
	testimonials, err := store.Data.Testimonials(true)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch testimonials!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonials fetched successfully!", fiber.Map{
		"testimonials": testimonials,
	})
}

// SubmitContact stores a contact form message, then alerts staff
// best-effort
func SubmitContact(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedContact").(*contentValidator.ContactRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	message := models.ContactMessage{
		Name:    reqData.Name,
		Email:   reqData.Email,
		Subject: reqData.Subject,
		Message: reqData.Message,
	}

	if err := store.Data.CreateContactMessage(&message); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save message!", nil)
	}

	notifier.SendContactAlert(message.Name, message.Email, message.Subject, message.Message)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Message sent successfully!", nil)
}

// AdminCreateTeamMember creates a team member profile
func AdminCreateTeamMember(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTeamMember").(*contentValidator.TeamMemberRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	member := models.TeamMember{
		Name:        reqData.Name,
		Role:        reqData.Role,
		Bio:         reqData.Bio,
		PhotoURL:    reqData.PhotoURL,
		LinkedinURL: reqData.LinkedinURL,
		OrderIndex:  reqData.OrderIndex,
	}

	if err := store.Data.CreateTeamMember(&member); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create team member!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Team member created successfully!", member)
}

// AdminUpdateTeamMember updates a team member profile
func AdminUpdateTeamMember(c *fiber.Ctx) error {
	memberID := c.Locals("memberID").(int)

	member, err := store.Data.TeamMemberByID(uint(memberID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Team member not found!", nil)
	}

	reqData, ok := c.Locals("validatedTeamMember").(*contentValidator.TeamMemberRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Name != "" {
		member.Name = reqData.Name
	}
	if reqData.Role != "" {
		member.Role = reqData.Role
	}
	if reqData.Bio != "" {
		member.Bio = reqData.Bio
	}
	if reqData.PhotoURL != "" {
		member.PhotoURL = reqData.PhotoURL
	}
	if reqData.LinkedinURL != "" {
		member.LinkedinURL = reqData.LinkedinURL
	}
	if reqData.OrderIndex > 0 {
		member.OrderIndex = reqData.OrderIndex
	}

	if err := store.Data.UpdateTeamMember(member); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update team member!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Team member updated successfully!", member)
}

// AdminDeleteTeamMember removes a team member profile
func AdminDeleteTeamMember(c *fiber.Ctx) error {
	memberID := c.Locals("memberID").(int)

	if _, err := store.Data.TeamMemberByID(uint(memberID)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Team member not found!", nil)
	}

	if err := store.Data.DeleteTeamMember(uint(memberID)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete team member!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Team member deleted successfully!", nil)
}

// AdminCreateTestimonial creates a testimonial
func AdminCreateTestimonial(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTestimonial").(*contentValidator.TestimonialRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	testimonial := models.Testimonial{
		AuthorName: reqData.AuthorName,
		AuthorRole: reqData.AuthorRole,
		Quote:      reqData.Quote,
		Rating:     reqData.Rating,
		PhotoURL:   reqData.PhotoURL,
	}
	if reqData.IsPublished != nil {
		testimonial.IsPublished = *reqData.IsPublished
	}

	if err := store.Data.CreateTestimonial(&testimonial); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create testimonial!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Testimonial created successfully!", testimonial)
}

// AdminUpdateTestimonial updates a testimonial
func AdminUpdateTestimonial(c *fiber.Ctx) error {
	testimonialID := c.Locals("testimonialID").(int)

	testimonial, err := store.Data.TestimonialByID(uint(testimonialID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Testimonial not found!", nil)
	}

	reqData, ok := c.Locals("validatedTestimonial").(*contentValidator.TestimonialRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.AuthorName != "" {
		testimonial.AuthorName = reqData.AuthorName
	}
	if reqData.AuthorRole != "" {
		testimonial.AuthorRole = reqData.AuthorRole
	}
	if reqData.Quote != "" {
		testimonial.Quote = reqData.Quote
	}
	if reqData.Rating > 0 {
		testimonial.Rating = reqData.Rating
	}
	if reqData.PhotoURL != "" {
		testimonial.PhotoURL = reqData.PhotoURL
	}
	if reqData.IsPublished != nil {
		testimonial.IsPublished = *reqData.IsPublished
	}

	if err := store.Data.UpdateTestimonial(testimonial); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update testimonial!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonial updated successfully!", testimonial)
}

// AdminDeleteTestimonial removes a testimonial
func AdminDeleteTestimonial(c *fiber.Ctx) error {
	testimonialID := c.Locals("testimonialID").(int)

	if _, err := store.Data.TestimonialByID(uint(testimonialID)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Testimonial not found!", nil)
	}

	if err := store.Data.DeleteTestimonial(uint(testimonialID)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete testimonial!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonial deleted successfully!", nil)
}
