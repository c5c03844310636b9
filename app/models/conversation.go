package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Conversation is a direct-message thread between two members. The
// member pair is unique; lookups must try both orders since either
// side may have opened the thread.
type Conversation struct {
	ID          string    `gorm:"primaryKey;type:char(36)" json:"id"`
	MemberOneID string    `gorm:"type:char(36);index;uniqueIndex:idx_conversation_pair" json:"member_one_id"`
	MemberTwoID string    `gorm:"type:char(36);index;uniqueIndex:idx_conversation_pair" json:"member_two_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// relations
	MemberOne      Member          `gorm:"foreignKey:MemberOneID" json:"member_one,omitempty"`
	MemberTwo      Member          `gorm:"foreignKey:MemberTwoID" json:"member_two,omitempty"`
	DirectMessages []DirectMessage `gorm:"foreignKey:ConversationID" json:"direct_messages,omitempty"`
}

func (Conversation) TableName() string {
	return TablePrefix + "conversations"
}

func (c *Conversation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
