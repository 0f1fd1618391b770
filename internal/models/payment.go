package models

import "gorm.io/gorm"

type Payment struct {
	gorm.Model

	PayerID       uint    `gorm:"not null;index"`
	PayeeID       uint    `gorm:"not null;index"`
	JobID         *uint   `gorm:"index"`
	Amount        float64 `gorm:"not null"`
	PaymentMethod string  `gorm:"not null"`
	Status        string  `gorm:"not null;default:'pending'"` // "pending", "completed", "refunded"

	// Relationships
	Payer User `gorm:"foreignKey:PayerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Payee User `gorm:"foreignKey:PayeeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Job   *Job `gorm:"foreignKey:JobID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
}
