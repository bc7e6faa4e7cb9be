package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LiveCourseDetails holds schedule and logistics for courses delivered as
// scheduled/live offerings rather than self-paced content.
type LiveCourseDetails struct {
	StartDate    string `json:"start_date"` // YYYY-MM-DD
	Schedule     string `json:"schedule"`   // e.g. "Sabados 9:00-13:00"
	Modality     string `json:"modality"`   // Presencial, Virtual, Hibrido
	Address      string `json:"address"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	SpotLimit    int    `json:"spot_limit"`
}

// Course represents a learning course
type Course struct {
	gorm.Model
	Slug             string `json:"slug" gorm:"uniqueIndex;not null"`
	Title            string `json:"title"`
	ShortDescription string `json:"short_description"`
	Description      string `json:"description" gorm:"type:text"`
	Level            string `json:"level" gorm:"default:'Principiante'"` // Principiante, Intermedio, Avanzado
	Category         string `json:"category"`
	Duration         int64  `json:"duration" gorm:"default:0"` // duration in hours
	Instructor       string `json:"instructor"`
	ThumbnailURL     string `json:"thumbnail_url"`
	IsFeatured       bool   `json:"is_featured" gorm:"default:false"`
	IsPopular        bool   `json:"is_popular" gorm:"default:false"`
	IsNew            bool   `json:"is_new" gorm:"default:false"`
	IsPublished      bool   `json:"is_published" gorm:"default:false"`

	// ModuleCount is a denormalized cache of child modules, kept in sync by
	// the admin module endpoints.
	ModuleCount int `json:"module_count" gorm:"default:0"`

	IsLive      bool                                  `json:"is_live" gorm:"default:false"`
	LiveDetails datatypes.JSONType[LiveCourseDetails] `json:"live_details"`

	IsDeleted bool `json:"-" gorm:"default:false"`
}
