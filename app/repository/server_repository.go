package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ManuelReschke/ChatNest/app/models"
)

// serverRepository implements the ServerRepository interface
type serverRepository struct {
	db *gorm.DB
}

// NewServerRepository creates a new server repository instance
func NewServerRepository(db *gorm.DB) ServerRepository {
	return &serverRepository{db: db}
}

// Create creates a new server in the database
func (r *serverRepository) Create(server *models.Server) error {
	return r.db.Create(server).Error
}

// GetByID retrieves a server with its channels and members
func (r *serverRepository) GetByID(id string) (*models.Server, error) {
	var server models.Server
	err := r.db.Preload("Channels").Preload("Members").First(&server, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &server, nil
}

// GetByInviteCode retrieves a server by its invite code
func (r *serverRepository) GetByInviteCode(code string) (*models.Server, error) {
	var server models.Server
	err := r.db.Where("invite_code = ?", code).First(&server).Error
	if err != nil {
		return nil, err
	}
	return &server, nil
}

// GetByProfileID retrieves all servers the profile is a member of
func (r *serverRepository) GetByProfileID(profileID string) ([]models.Server, error) {
	var servers []models.Server
	err := r.db.
		Joins("JOIN "+models.Member{}.TableName()+" AS m ON m.server_id = "+models.Server{}.TableName()+".id").
		Where("m.profile_id = ?", profileID).
		Find(&servers).Error
	return servers, err
}

// Update updates an existing server in the database
func (r *serverRepository) Update(server *models.Server) error {
	return r.db.Save(server).Error
}

// Delete removes a server by its ID
func (r *serverRepository) Delete(id string) error {
	return r.db.Delete(&models.Server{}, "id = ?", id).Error
}

// RotateInviteCode replaces the invite code and returns the updated row
func (r *serverRepository) RotateInviteCode(id string) (*models.Server, error) {
	updated := &models.Server{}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Server{}).
			Where("id = ?", id).
			Update("invite_code", uuid.New().String()).Error; err != nil {
			return err
		}
		return tx.First(updated, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
