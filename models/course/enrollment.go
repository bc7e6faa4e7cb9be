package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment tracks a user's enrollment in a course with progress
type Enrollment struct {
	gorm.Model
	UserID            uint       `json:"user_id" gorm:"index;not null"`
	CourseID          uint       `json:"course_id" gorm:"index;not null"`
	Progress          int        `json:"progress" gorm:"default:0"` // Completion percentage (0-100)
	Completed         bool       `json:"completed" gorm:"default:false"`
	CompletedSections int        `json:"completed_sections" gorm:"default:0"`
	TotalSections     int        `json:"total_sections" gorm:"default:0"`
	CompletedAt       *time.Time `json:"completed_at"`
	IsDeleted         bool       `json:"-" gorm:"default:false"`
	Course            Course     `json:"course" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
