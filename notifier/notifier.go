package notifier

import (
	courseModels "academia/models/course"
)

// EmailSender delivers a single HTML email. Failures are logged at the
// call site and never surfaced to API callers.
type EmailSender interface {
	Send(to []string, subject, htmlBody string) error
}

// SheetAppender appends one registration row to the external
// spreadsheet mapped to the course.
type SheetAppender interface {
	AppendRegistration(course *courseModels.Course, reg *courseModels.LiveCourseRegistration) error
}

// Active sinks, set once during startup
var (
	Email  EmailSender   = NewConsoleSender()
	Sheets SheetAppender = NewConsoleAppender()
)
