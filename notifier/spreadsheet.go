package notifier

import (
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"

	"academia/config"
	courseModels "academia/models/course"
)

// courseSheets maps a course slug to the spreadsheet tab its
// registrations land on. Courses absent from the map fail the append
// loudly (logged), never the registration itself.
var courseSheets = map[string]string{
	"python-fullstack":      "Registros Python Fullstack",
	"desarrollo-web":        "Registros Desarrollo Web",
	"robotica-kids":         "Registros Robotica Kids",
	"ingles-tecnologico":    "Registros Ingles Tecnologico",
	"ofimatica-profesional": "Registros Ofimatica",
}

// webhookAppender posts registration rows to an Apps Script webhook
// that writes them into the academy's spreadsheet.
type webhookAppender struct {
	client *resty.Client
	url    string
}

// NewWebhookAppender builds a SheetAppender against the configured webhook
func NewWebhookAppender() SheetAppender {
	return &webhookAppender{
		client: resty.New().SetTimeout(10 * time.Second),
		url:    config.AppConfig.SheetsWebhookURL,
	}
}

func (a *webhookAppender) AppendRegistration(course *courseModels.Course, reg *courseModels.LiveCourseRegistration) error {
	sheet, ok := courseSheets[course.Slug]
	if !ok {
		return fmt.Errorf("no spreadsheet mapping for course %q", course.Slug)
	}

	resp, err := a.client.R().
		SetBody(map[string]interface{}{
			"sheet":                 sheet,
			"reference_code":        reg.ReferenceCode,
			"course":                course.Title,
			"first_name":            reg.FirstName,
			"last_name":             reg.LastName,
			"email":                 reg.Email,
			"phone_number":          reg.PhoneNumber,
			"age":                   reg.Age,
			"guardian_first_name":   reg.GuardianFirstName,
			"guardian_last_name":    reg.GuardianLastName,
			"guardian_phone_number": reg.GuardianPhoneNumber,
			"preferred_modality":    reg.PreferredModality,
			"has_laptop":            reg.HasLaptop,
			"registered_at":         reg.RegisteredAt.Format(time.RFC3339),
		}).
		Post(a.url)
	if err != nil {
		return err
	}
	if resp.StatusCode() >= 300 {
		return fmt.Errorf("spreadsheet webhook returned %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}

// consoleAppender logs rows instead of posting them
type consoleAppender struct{}

// NewConsoleAppender returns a SheetAppender that only logs
func NewConsoleAppender() SheetAppender {
	return consoleAppender{}
}

func (consoleAppender) AppendRegistration(course *courseModels.Course, reg *courseModels.LiveCourseRegistration) error {
	log.Printf("[SHEET] course=%s registration=%s (console sink, not delivered)", course.Slug, reg.ReferenceCode)
	return nil
}
