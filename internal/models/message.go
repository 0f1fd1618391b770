package models

import "gorm.io/gorm"

type Message struct {
	gorm.Model

	FromUserID uint   `gorm:"not null;index"`
	ToUserID   uint   `gorm:"not null;index"`
	JobID      *uint  `gorm:"index"`
	Content    string `gorm:"not null"`
	Read       bool   `gorm:"default:false"`

	// Relationships
	Sender    User `gorm:"foreignKey:FromUserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Recipient User `gorm:"foreignKey:ToUserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Job       *Job `gorm:"foreignKey:JobID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
}
