package models

import "gorm.io/gorm"

// Testimonial is a published student quote
type Testimonial struct {
	gorm.Model
	AuthorName  string `json:"author_name"`
	AuthorRole  string `json:"author_role"`
	Quote       string `json:"quote" gorm:"type:text"`
	Rating      int    `json:"rating" gorm:"default:5"`
	PhotoURL    string `json:"photo_url"`
	IsPublished bool   `json:"is_published" gorm:"default:false"`
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}
