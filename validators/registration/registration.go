package registrationValidator

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"academia/middleware"
)

var (
	validate   = validator.New()
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
)

func init() {
	// Report errors under the json field name
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// RegistrationRequest is the validated live-course registration payload.
// FirstName/LastName and the guardian equivalents are filled in by the
// validator from the submitted full names.
type RegistrationRequest struct {
	CourseID          int    `json:"course_id" validate:"required,gt=0"`
	FullName          string `json:"full_name" validate:"required,min=3"`
	Email             string `json:"email" validate:"required,email"`
	PhoneNumber       string `json:"phone_number" validate:"required"`
	Age               int    `json:"age" validate:"required,gte=1,lte=100"`
	GuardianFullName  string `json:"guardian_name"`
	GuardianPhone     string `json:"guardian_phone_number"`
	PreferredModality string `json:"preferred_modality" validate:"required,oneof=Presencial Virtual"`
	HasLaptop         *bool  `json:"has_laptop" validate:"required"`

	FirstName         string `json:"-"`
	LastName          string `json:"-"`
	GuardianFirstName string `json:"-"`
	GuardianLastName  string `json:"-"`
}

// message converts a single validator/v10 violation into a user-facing string
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required!"
	case "email":
		return "Invalid email format!"
	case "min":
		return "Must be at least " + fe.Param() + " characters long!"
	case "gt", "gte":
		return "Must be at least " + fe.Param() + "!"
	case "lte":
		return "Must be at most " + fe.Param() + "!"
	case "oneof":
		return "Must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ") + "!"
	}
	return "Invalid value!"
}

// splitFullName splits a submitted full name into first and last parts.
// Everything after the first word is treated as the last name.
func splitFullName(fullName string) (string, string) {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// Register validates the live-course registration payload, including the
// guardian fields that become mandatory for registrants under 18.
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegistrationRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.FullName = strings.TrimSpace(reqData.FullName)
		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))
		reqData.PhoneNumber = strings.TrimSpace(reqData.PhoneNumber)
		reqData.GuardianFullName = strings.TrimSpace(reqData.GuardianFullName)
		reqData.GuardianPhone = strings.TrimSpace(reqData.GuardianPhone)
		reqData.PreferredModality = strings.TrimSpace(reqData.PreferredModality)

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fe := range err.(validator.ValidationErrors) {
				if _, seen := errors[fe.Field()]; !seen {
					errors[fe.Field()] = message(fe)
				}
			}
		}

		if reqData.PhoneNumber != "" && !phoneRegex.MatchString(reqData.PhoneNumber) {
			errors["phone_number"] = "Phone number must be 10 to 15 digits!"
		}

		// Guardian consent applies to minors only
		if reqData.Age >= 1 && reqData.Age < 18 {
			if reqData.GuardianFullName == "" {
				errors["guardian_name"] = "Guardian name is required for registrants under 18!"
			}
			if reqData.GuardianPhone == "" {
				errors["guardian_phone_number"] = "Guardian phone number is required for registrants under 18!"
			} else if !phoneRegex.MatchString(reqData.GuardianPhone) {
				errors["guardian_phone_number"] = "Guardian phone number must be 10 to 15 digits!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.FirstName, reqData.LastName = splitFullName(reqData.FullName)
		reqData.GuardianFirstName, reqData.GuardianLastName = splitFullName(reqData.GuardianFullName)

		c.Locals("validatedRegistration", reqData)
		return c.Next()
	}
}

// ListRegistrations validates the userId/courseId query params
func ListRegistrations() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		userID, err := strconv.Atoi(c.Query("userId"))
		if err != nil || userID <= 0 {
			errors["userId"] = "userId must be a valid integer!"
		}

		courseID, err := strconv.Atoi(c.Query("courseId"))
		if err != nil || courseID <= 0 {
			errors["courseId"] = "courseId must be a valid integer!"
		}

		if len(errors) > 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", errors)
		}

		c.Locals("queryUserID", userID)
		c.Locals("queryCourseID", courseID)
		return c.Next()
	}
}
