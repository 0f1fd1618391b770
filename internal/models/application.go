package models

import (
	"time"

	"gorm.io/gorm"
)

// Application has no uniqueness constraint on (JobID, UserID): a user may
// apply to the same job more than once.
type Application struct {
	gorm.Model

	JobID           uint      `gorm:"not null;index"`
	UserID          uint      `gorm:"not null;index"`
	CoverLetter     string    `gorm:"not null"`
	Status          string    `gorm:"not null;default:'pending'"` // "pending", "accepted", "rejected"
	ApplicationDate time.Time `gorm:"not null"`

	// Relationships
	Job       Job  `gorm:"foreignKey:JobID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Applicant User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
