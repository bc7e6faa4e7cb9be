package course

import (
	"time"

	"gorm.io/gorm"
)

// Modalities accepted on a live-course registration
const (
	ModalityPresencial = "Presencial"
	ModalityVirtual    = "Virtual"
)

// LiveCourseRegistration is the write-once audit record of a registration
// for a scheduled/live course. UserID is nullable: guest registrations are
// permitted and are not deduplicated.
type LiveCourseRegistration struct {
	gorm.Model
	CourseID      uint   `json:"course_id" gorm:"index;not null"`
	UserID        *uint  `json:"user_id" gorm:"index"`
	ReferenceCode string `json:"reference_code" gorm:"uniqueIndex"`

	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Age         int    `json:"age"`

	// Guardian fields, required only when the registrant is under 18
	GuardianFirstName   string `json:"guardian_first_name"`
	GuardianLastName    string `json:"guardian_last_name"`
	GuardianPhoneNumber string `json:"guardian_phone_number"`

	PreferredModality string    `json:"preferred_modality"` // Presencial, Virtual
	HasLaptop         bool      `json:"has_laptop"`
	RegisteredAt      time.Time `json:"registered_at"`
	IsDeleted         bool      `json:"-" gorm:"default:false"`
}
