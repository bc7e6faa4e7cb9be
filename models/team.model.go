package models

import "gorm.io/gorm"

// TeamMember is a staff profile shown on the public site
type TeamMember struct {
	gorm.Model
	Name        string `json:"name"`
	Role        string `json:"role"`
	Bio         string `json:"bio" gorm:"type:text"`
	PhotoURL    string `json:"photo_url"`
	LinkedinURL string `json:"linkedin_url"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"`
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}
