package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is a channel post. Deletion is a soft flag so the row keeps
// its place in history; readers filter on Deleted.
type Message struct {
	ID        string    `gorm:"primaryKey;type:char(36)" json:"id"`
	Content   string    `gorm:"type:text" json:"content" validate:"required"`
	FileURL   string    `gorm:"type:text" json:"file_url,omitempty"`
	MemberID  string    `gorm:"type:char(36);index" json:"member_id"`
	ChannelID string    `gorm:"type:char(36);index" json:"channel_id"`
	Deleted   bool      `gorm:"default:false" json:"deleted"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// relations
	Member  Member  `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	Channel Channel `gorm:"foreignKey:ChannelID" json:"channel,omitempty"`
}

func (Message) TableName() string {
	return TablePrefix + "messages"
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

func (m *Message) Validate() error {
	v := validator.New()

	return v.Struct(m)
}
