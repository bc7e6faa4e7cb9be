package store

import (
	"errors"

	"academia/models"
	courseModels "academia/models/course"
)

// ErrNotFound is returned by every lookup that matches no row.
var ErrNotFound = errors.New("record not found")

// CourseFilter narrows public course listings
type CourseFilter struct {
	Category string
	Level    string
	Featured *bool
	Popular  *bool
	Live     *bool
}

// Store is the persistence boundary. Two implementations exist: a GORM
// backend and an in-memory map backend, selected at process start. No
// code outside this package knows which one is active.
type Store interface {
	// Users
	CreateUser(u *models.User) error
	UserByID(id uint) (*models.User, error)
	UserByEmail(email string) (*models.User, error)
	UpdateUser(u *models.User) error

	// Catalog
	CreateCourse(c *courseModels.Course) error
	UpdateCourse(c *courseModels.Course) error
	DeleteCourse(id uint) error
	CourseByID(id uint) (*courseModels.Course, error)
	CourseBySlug(slug string) (*courseModels.Course, error)
	Courses(filter CourseFilter) ([]courseModels.Course, error)

	CreateModule(m *courseModels.Module) error
	UpdateModule(m *courseModels.Module) error
	DeleteModule(id uint) error
	ModuleByID(id uint) (*courseModels.Module, error)
	ModulesByCourse(courseID uint) ([]courseModels.Module, error)

	CreateSection(s *courseModels.Section) error
	UpdateSection(s *courseModels.Section) error
	DeleteSection(id uint) error
	SectionByID(id uint) (*courseModels.Section, error)
	SectionsByModule(moduleID uint) ([]courseModels.Section, error)
	CountSectionsByCourse(courseID uint) (int64, error)

	// Enrollments
	CreateEnrollment(e *courseModels.Enrollment) error
	UpdateEnrollment(e *courseModels.Enrollment) error
	DeleteEnrollment(id uint) error
	EnrollmentByID(id uint) (*courseModels.Enrollment, error)
	EnrollmentByUserAndCourse(userID, courseID uint) (*courseModels.Enrollment, error)
	EnrollmentsByUser(userID uint) ([]courseModels.Enrollment, error)

	// Section progress
	CreateSectionProgress(p *courseModels.SectionProgress) error
	UpdateSectionProgress(p *courseModels.SectionProgress) error
	SectionProgressByUserAndSection(userID, sectionID uint) (*courseModels.SectionProgress, error)
	SectionProgressByUserAndCourse(userID, courseID uint) ([]courseModels.SectionProgress, error)
	CountCompletedSections(userID, courseID uint) (int64, error)
	DeleteSectionProgressByUserAndCourse(userID, courseID uint) error
	DeleteSectionProgressBySection(sectionID uint) error

	// Live-course registrations
	CreateRegistration(r *courseModels.LiveCourseRegistration) error
	RegistrationsByUserAndCourse(userID, courseID uint) ([]courseModels.LiveCourseRegistration, error)
	RegistrationsByCourse(courseID uint) ([]courseModels.LiveCourseRegistration, error)

	// Site content
	CreateTeamMember(t *models.TeamMember) error
	UpdateTeamMember(t *models.TeamMember) error
	DeleteTeamMember(id uint) error
	TeamMemberByID(id uint) (*models.TeamMember, error)
	TeamMembers() ([]models.TeamMember, error)

	CreateTestimonial(t *models.Testimonial) error
	UpdateTestimonial(t *models.Testimonial) error
	DeleteTestimonial(id uint) error
	TestimonialByID(id uint) (*models.Testimonial, error)
	Testimonials(publishedOnly bool) ([]models.Testimonial, error)

	CreateContactMessage(m *models.ContactMessage) error
}

// Data is the active store, set once during startup
var Data Store
