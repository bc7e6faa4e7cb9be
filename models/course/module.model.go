package course

import "gorm.io/gorm"

// Module represents a block of sections within a course
type Module struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int64  `json:"duration" gorm:"default:0"`                // duration in hours
	Difficulty  string `json:"difficulty" gorm:"default:'Principiante'"` // Principiante, Intermedio, Avanzado
	Instructor  string `json:"instructor"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"` // Module order in course
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}
