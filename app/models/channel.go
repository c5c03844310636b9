package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CHANNEL_TEXT  = "TEXT"
	CHANNEL_AUDIO = "AUDIO"
	CHANNEL_VIDEO = "VIDEO"
)

// Channel is a named room inside a Server. ProfileID records who
// created it.
type Channel struct {
	ID        string    `gorm:"primaryKey;type:char(36)" json:"id"`
	Name      string    `gorm:"type:varchar(150);index" json:"name" validate:"required,max=150"`
	Type      string    `gorm:"type:varchar(20);default:'TEXT'" json:"type" validate:"omitempty,oneof=TEXT AUDIO VIDEO"`
	ProfileID string    `gorm:"type:char(36);index" json:"profile_id"`
	ServerID  string    `gorm:"type:char(36);index" json:"server_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// relations
	Profile  Profile   `gorm:"foreignKey:ProfileID" json:"profile,omitempty"`
	Server   Server    `gorm:"foreignKey:ServerID" json:"server,omitempty"`
	Messages []Message `gorm:"foreignKey:ChannelID" json:"messages,omitempty"`
}

func (Channel) TableName() string {
	return TablePrefix + "channels"
}

func (c *Channel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Type == "" {
		c.Type = CHANNEL_TEXT
	}
	return nil
}

func (c *Channel) Validate() error {
	v := validator.New()

	return v.Struct(c)
}
