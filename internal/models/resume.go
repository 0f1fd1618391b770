package models

import "gorm.io/gorm"

// Resume stores the uploaded document bytes inline. Size and content type
// are enforced at the upload boundary before a row is ever created.
type Resume struct {
	gorm.Model

	UserID      uint   `gorm:"not null;index"`
	FileName    string `gorm:"not null"`
	ContentType string `gorm:"not null"`
	Data        []byte `gorm:"not null"`
	Description string

	// Relationships
	Owner User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
