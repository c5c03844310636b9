package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ManuelReschke/ChatNest/app/models"
)

// conversationRepository implements the ConversationRepository interface
type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository creates a new conversation repository instance
func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

// GetOrCreate finds the thread between two members regardless of which
// side opened it, creating it when none exists yet
func (r *conversationRepository) GetOrCreate(memberOneID, memberTwoID string) (*models.Conversation, error) {
	var conversation models.Conversation
	err := r.db.
		Where("(member_one_id = ? AND member_two_id = ?) OR (member_one_id = ? AND member_two_id = ?)",
			memberOneID, memberTwoID, memberTwoID, memberOneID).
		First(&conversation).Error
	if err == nil {
		return &conversation, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	conversation = models.Conversation{
		MemberOneID: memberOneID,
		MemberTwoID: memberTwoID,
	}
	if err := r.db.Create(&conversation).Error; err != nil {
		return nil, err
	}
	return &conversation, nil
}

// GetByID retrieves a conversation with both member profiles resolved
func (r *conversationRepository) GetByID(id string) (*models.Conversation, error) {
	var conversation models.Conversation
	err := r.db.
		Preload("MemberOne.Profile").
		Preload("MemberTwo.Profile").
		First(&conversation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

// CreateDirectMessage creates a new direct message in the database
func (r *conversationRepository) CreateDirectMessage(dm *models.DirectMessage) error {
	return r.db.Create(dm).Error
}

// GetDirectMessageByID retrieves a direct message with its sender and
// conversation resolved via their respective foreign keys
func (r *conversationRepository) GetDirectMessageByID(id string) (*models.DirectMessage, error) {
	var dm models.DirectMessage
	err := r.db.Preload("Member.Profile").Preload("Conversation").First(&dm, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &dm, nil
}

// ListDirectMessages retrieves a page of messages in a conversation,
// newest first, skipping soft-deleted rows
func (r *conversationRepository) ListDirectMessages(conversationID string, offset, limit int) ([]models.DirectMessage, error) {
	var dms []models.DirectMessage
	err := r.db.Preload("Member.Profile").
		Where("conversation_id = ? AND deleted = ?", conversationID, false).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&dms).Error
	return dms, err
}

// SoftDeleteDirectMessage flags a direct message as deleted without
// removing the row
func (r *conversationRepository) SoftDeleteDirectMessage(id string) error {
	return r.db.Model(&models.DirectMessage{}).Where("id = ?", id).Update("deleted", true).Error
}
