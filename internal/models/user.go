package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	FirstName    string `gorm:"not null"`
	LastName     string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Phone        string
	Verified     bool   `gorm:"default:false"`
	UserType     string `gorm:"not null"` // "assessor", "moderator", "sdp", "admin"
	AgreeToTerms bool   `gorm:"default:false"`

	// Relationships
	Jobs             []Job         `gorm:"foreignKey:SdpID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Applications     []Application `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Resumes          []Resume      `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	SentMessages     []Message     `gorm:"foreignKey:FromUserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	ReceivedMessages []Message     `gorm:"foreignKey:ToUserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
