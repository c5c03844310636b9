package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the identity-framework's user record. Its lifecycle is driven
// entirely by the auth adapter; the application itself works with Profile.
type User struct {
	ID            string     `gorm:"primaryKey;type:char(36)" json:"id"`
	Name          string     `gorm:"type:varchar(150)" json:"name" validate:"max=150"`
	Email         string     `gorm:"type:varchar(200);index" json:"email" validate:"omitempty,email,max=200"`
	EmailVerified *time.Time `gorm:"type:timestamp;default:null" json:"email_verified,omitempty"`
	Image         string     `gorm:"type:varchar(255)" json:"image" validate:"max=255"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// relations
	Accounts []Account `gorm:"foreignKey:UserID" json:"accounts,omitempty"`
	Sessions []Session `gorm:"foreignKey:UserID" json:"sessions,omitempty"`
	Profile  *Profile  `gorm:"foreignKey:UserID" json:"profile,omitempty"`
}

func (User) TableName() string {
	return TablePrefix + "users"
}

// BeforeCreate assigns a collision-resistant id when none was provided.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

func (u *User) Validate() error {
	v := validator.New()

	return v.Struct(u)
}
