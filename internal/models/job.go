package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Job struct {
	gorm.Model

	SdpID                  uint   `gorm:"not null;index"` // Foreign key to the posting User
	Title                  string `gorm:"not null"`
	Description            string `gorm:"not null"`
	Location               string
	Budget                 float64
	Status                 string         `gorm:"not null;default:'open'"` // "open", "in-progress", "closed"
	RequiredQualifications datatypes.JSON `gorm:"type:jsonb"`              // list of qualification strings
	PostedDate             time.Time      `gorm:"not null"`
	Deadline               *time.Time

	// Relationships
	Poster       User          `gorm:"foreignKey:SdpID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Applications []Application `gorm:"foreignKey:JobID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Messages     []Message     `gorm:"foreignKey:JobID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
}
