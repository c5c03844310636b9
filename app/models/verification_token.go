package models

import "time"

// VerificationToken backs email sign-in and address verification. Each
// token is consumed (deleted) exactly once on successful lookup.
type VerificationToken struct {
	Identifier string    `gorm:"primaryKey;type:varchar(191)" json:"identifier"`
	Token      string    `gorm:"primaryKey;type:varchar(191)" json:"token"`
	Expires    time.Time `gorm:"type:timestamp" json:"expires"`
}

func (VerificationToken) TableName() string {
	return TablePrefix + "verification_tokens"
}
