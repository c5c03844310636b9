package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is the chat-facing identity of a User (one-to-one). All chat
// entities hang off profiles rather than auth users so the auth schema
// can evolve independently.
type Profile struct {
	ID        string    `gorm:"primaryKey;type:char(36)" json:"id"`
	UserID    string    `gorm:"type:char(36);uniqueIndex" json:"user_id"`
	Name      string    `gorm:"type:varchar(150)" json:"name" validate:"required,max=150"`
	ImageURL  string    `gorm:"type:text" json:"image_url"`
	Email     string    `gorm:"type:varchar(200)" json:"email" validate:"omitempty,email,max=200"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// relations
	Servers  []Server  `gorm:"foreignKey:ProfileID" json:"servers,omitempty"`
	Members  []Member  `gorm:"foreignKey:ProfileID" json:"members,omitempty"`
	Channels []Channel `gorm:"foreignKey:ProfileID" json:"channels,omitempty"`
}

func (Profile) TableName() string {
	return TablePrefix + "profiles"
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

func (p *Profile) Validate() error {
	v := validator.New()

	return v.Struct(p)
}
