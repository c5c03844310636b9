package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DirectMessage mirrors Message but lives in a Conversation instead of
// a Channel.
type DirectMessage struct {
	ID             string    `gorm:"primaryKey;type:char(36)" json:"id"`
	Content        string    `gorm:"type:text" json:"content" validate:"required"`
	FileURL        string    `gorm:"type:text" json:"file_url,omitempty"`
	MemberID       string    `gorm:"type:char(36);index" json:"member_id"`
	ConversationID string    `gorm:"type:char(36);index" json:"conversation_id"`
	Deleted        bool      `gorm:"default:false" json:"deleted"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// relations
	Member       Member       `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	Conversation Conversation `gorm:"foreignKey:ConversationID" json:"conversation,omitempty"`
}

func (DirectMessage) TableName() string {
	return TablePrefix + "direct_messages"
}

func (d *DirectMessage) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}

func (d *DirectMessage) Validate() error {
	v := validator.New()

	return v.Struct(d)
}
