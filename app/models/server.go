package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Server is a community owned by the Profile that created it. The
// invite code is the only join handle and must stay unique.
type Server struct {
	ID         string    `gorm:"primaryKey;type:char(36)" json:"id"`
	Name       string    `gorm:"type:varchar(150)" json:"name" validate:"required,max=150"`
	ImageURL   string    `gorm:"type:text" json:"image_url"`
	InviteCode string    `gorm:"type:char(36);uniqueIndex" json:"invite_code"`
	ProfileID  string    `gorm:"type:char(36);index" json:"profile_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// relations
	Profile  Profile   `gorm:"foreignKey:ProfileID" json:"profile,omitempty"`
	Members  []Member  `gorm:"foreignKey:ServerID" json:"members,omitempty"`
	Channels []Channel `gorm:"foreignKey:ServerID" json:"channels,omitempty"`
}

func (Server) TableName() string {
	return TablePrefix + "servers"
}

// BeforeCreate assigns the id and a fresh invite code when missing.
func (s *Server) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.InviteCode == "" {
		s.InviteCode = uuid.New().String()
	}
	return nil
}

func (s *Server) Validate() error {
	v := validator.New()

	return v.Struct(s)
}
