package repository

import (
	"gorm.io/gorm"

	"github.com/ManuelReschke/ChatNest/app/models"
)

// channelRepository implements the ChannelRepository interface
type channelRepository struct {
	db *gorm.DB
}

// NewChannelRepository creates a new channel repository instance
func NewChannelRepository(db *gorm.DB) ChannelRepository {
	return &channelRepository{db: db}
}

// Create creates a new channel in the database
func (r *channelRepository) Create(channel *models.Channel) error {
	return r.db.Create(channel).Error
}

// GetByID retrieves a channel by its ID
func (r *channelRepository) GetByID(id string) (*models.Channel, error) {
	var channel models.Channel
	err := r.db.First(&channel, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &channel, nil
}

// GetByServerID retrieves all channels of a server, oldest first
func (r *channelRepository) GetByServerID(serverID string) ([]models.Channel, error) {
	var channels []models.Channel
	err := r.db.Where("server_id = ?", serverID).Order("created_at ASC").Find(&channels).Error
	return channels, err
}

// Update updates an existing channel in the database
func (r *channelRepository) Update(channel *models.Channel) error {
	return r.db.Save(channel).Error
}

// Delete removes a channel by its ID
func (r *channelRepository) Delete(id string) error {
	return r.db.Delete(&models.Channel{}, "id = ?", id).Error
}
