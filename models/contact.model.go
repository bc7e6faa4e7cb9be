package models

import "gorm.io/gorm"

// ContactMessage is a submission from the public contact form
type ContactMessage struct {
	gorm.Model
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message" gorm:"type:text"`
	IsDeleted bool   `json:"-" gorm:"default:false"`
}
