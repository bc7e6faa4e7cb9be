package course

import (
	"time"

	"gorm.io/gorm"
)

// SectionProgress tracks a user's completion of a single section.
// Completion is a toggle: un-marking a section flips Completed back to
// false but keeps the video checkpoint, so playback can resume.
type SectionProgress struct {
	gorm.Model
	UserID        uint       `json:"user_id" gorm:"index;not null"`
	CourseID      uint       `json:"course_id" gorm:"index;not null"`
	SectionID     uint       `json:"section_id" gorm:"index;not null"`
	Completed     bool       `json:"completed" gorm:"default:false"`
	CompletedAt   *time.Time `json:"completed_at"`
	VideoProgress int        `json:"video_progress" gorm:"default:0"` // watched percentage (0-100)
	IsDeleted     bool       `json:"-" gorm:"default:false"`
}
