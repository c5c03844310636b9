package repository

import (
	"gorm.io/gorm"

	"github.com/ManuelReschke/ChatNest/app/models"
)

// ProfileRepository defines the interface for profile-related database operations
type ProfileRepository interface {
	Create(profile *models.Profile) error
	GetByID(id string) (*models.Profile, error)
	GetByUserID(userID string) (*models.Profile, error)
	Update(profile *models.Profile) error
	Delete(id string) error
}

// ServerRepository defines the interface for server-related database operations
type ServerRepository interface {
	Create(server *models.Server) error
	GetByID(id string) (*models.Server, error)
	GetByInviteCode(code string) (*models.Server, error)
	GetByProfileID(profileID string) ([]models.Server, error)
	Update(server *models.Server) error
	Delete(id string) error
	RotateInviteCode(id string) (*models.Server, error)
}

// MemberRepository defines the interface for member-related database operations
type MemberRepository interface {
	Create(member *models.Member) error
	GetByID(id string) (*models.Member, error)
	GetByServerAndProfile(serverID, profileID string) (*models.Member, error)
	ListByServer(serverID string) ([]models.Member, error)
	UpdateRole(id, role string) error
	Delete(id string) error
}

// ChannelRepository defines the interface for channel-related database operations
type ChannelRepository interface {
	Create(channel *models.Channel) error
	GetByID(id string) (*models.Channel, error)
	GetByServerID(serverID string) ([]models.Channel, error)
	Update(channel *models.Channel) error
	Delete(id string) error
}

// MessageRepository defines the interface for channel-message database operations
type MessageRepository interface {
	Create(message *models.Message) error
	GetByID(id string) (*models.Message, error)
	ListByChannel(channelID string, offset, limit int) ([]models.Message, error)
	Update(message *models.Message) error
	SoftDelete(id string) error
}

// ConversationRepository defines the interface for direct-message database operations
type ConversationRepository interface {
	GetOrCreate(memberOneID, memberTwoID string) (*models.Conversation, error)
	GetByID(id string) (*models.Conversation, error)
	CreateDirectMessage(dm *models.DirectMessage) error
	GetDirectMessageByID(id string) (*models.DirectMessage, error)
	ListDirectMessages(conversationID string, offset, limit int) ([]models.DirectMessage, error)
	SoftDeleteDirectMessage(id string) error
}

// Repositories struct holds all repository instances
type Repositories struct {
	Profile      ProfileRepository
	Server       ServerRepository
	Member       MemberRepository
	Channel      ChannelRepository
	Message      MessageRepository
	Conversation ConversationRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Profile:      NewProfileRepository(db),
		Server:       NewServerRepository(db),
		Member:       NewMemberRepository(db),
		Channel:      NewChannelRepository(db),
		Message:      NewMessageRepository(db),
		Conversation: NewConversationRepository(db),
	}
}
