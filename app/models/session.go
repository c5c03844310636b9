package models

import "time"

// Session is one login session issued by the identity framework. The
// framework deletes expired rows through the adapter; nothing in this
// layer reaps them on its own.
type Session struct {
	SessionToken string    `gorm:"primaryKey;type:varchar(191)" json:"session_token"`
	UserID       string    `gorm:"type:char(36);index" json:"user_id"`
	Expires      time.Time `gorm:"type:timestamp" json:"expires"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Session) TableName() string {
	return TablePrefix + "sessions"
}
