package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ROLE_ADMIN     = "ADMIN"
	ROLE_MODERATOR = "MODERATOR"
	ROLE_GUEST     = "GUEST"
)

// Member ties a Profile into a Server with a role. Conversations hang
// off members, not profiles, so direct messages stay scoped to the
// server both members share.
type Member struct {
	ID        string    `gorm:"primaryKey;type:char(36)" json:"id"`
	Role      string    `gorm:"type:varchar(20);default:'GUEST'" json:"role"`
	ProfileID string    `gorm:"type:char(36);index" json:"profile_id"`
	ServerID  string    `gorm:"type:char(36);index" json:"server_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// relations
	Profile        Profile         `gorm:"foreignKey:ProfileID" json:"profile,omitempty"`
	Server         Server          `gorm:"foreignKey:ServerID" json:"server,omitempty"`
	Messages       []Message       `gorm:"foreignKey:MemberID" json:"messages,omitempty"`
	DirectMessages []DirectMessage `gorm:"foreignKey:MemberID" json:"direct_messages,omitempty"`
	// Conversation endpoints carry distinct relation names so the two
	// foreign keys into this table stay unambiguous.
	ConversationsInitiated []Conversation `gorm:"foreignKey:MemberOneID" json:"conversations_initiated,omitempty"`
	ConversationsReceived  []Conversation `gorm:"foreignKey:MemberTwoID" json:"conversations_received,omitempty"`
}

func (Member) TableName() string {
	return TablePrefix + "members"
}

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.Role == "" {
		m.Role = ROLE_GUEST
	}
	return nil
}

// IsModerator reports whether the member may manage messages.
func (m *Member) IsModerator() bool {
	return m.Role == ROLE_ADMIN || m.Role == ROLE_MODERATOR
}
