package course

import "gorm.io/gorm"

// Section is the finest-grained unit of learning content and of
// completion tracking. CourseID is duplicated from the parent module so
// per-course counts and progress queries stay single-table.
type Section struct {
	gorm.Model
	CourseID   uint   `json:"course_id" gorm:"index;not null"`
	ModuleID   uint   `json:"module_id" gorm:"index;not null"`
	Title      string `json:"title"`
	Content    string `json:"content" gorm:"type:text"`
	VideoURL   string `json:"video_url"`
	Duration   int    `json:"duration" gorm:"default:0"`    // duration in minutes
	OrderIndex int    `json:"order_index" gorm:"default:0"` // Order within module
	IsDeleted  bool   `json:"-" gorm:"default:false"`
}
