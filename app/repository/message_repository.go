package repository

import (
	"gorm.io/gorm"

	"github.com/ManuelReschke/ChatNest/app/models"
)

// messageRepository implements the MessageRepository interface
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository instance
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create creates a new message in the database
func (r *messageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// GetByID retrieves a message with its sender resolved down to the
// profile (message -> member -> profile)
func (r *messageRepository) GetByID(id string) (*models.Message, error) {
	var message models.Message
	err := r.db.Preload("Member.Profile").First(&message, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// ListByChannel retrieves a page of messages in a channel, newest
// first, skipping soft-deleted rows
func (r *messageRepository) ListByChannel(channelID string, offset, limit int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Preload("Member.Profile").
		Where("channel_id = ? AND deleted = ?", channelID, false).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&messages).Error
	return messages, err
}

// Update updates an existing message in the database
func (r *messageRepository) Update(message *models.Message) error {
	return r.db.Save(message).Error
}

// SoftDelete flags a message as deleted without removing the row
func (r *messageRepository) SoftDelete(id string) error {
	return r.db.Model(&models.Message{}).Where("id = ?", id).Update("deleted", true).Error
}
