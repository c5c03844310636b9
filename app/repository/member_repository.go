package repository

import (
	"gorm.io/gorm"

	"github.com/ManuelReschke/ChatNest/app/models"
)

// memberRepository implements the MemberRepository interface
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository instance
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// Create creates a new member in the database
func (r *memberRepository) Create(member *models.Member) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a member with its profile
func (r *memberRepository) GetByID(id string) (*models.Member, error) {
	var member models.Member
	err := r.db.Preload("Profile").First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByServerAndProfile retrieves the membership of a profile in a server
func (r *memberRepository) GetByServerAndProfile(serverID, profileID string) (*models.Member, error) {
	var member models.Member
	err := r.db.Where("server_id = ? AND profile_id = ?", serverID, profileID).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// ListByServer retrieves all members of a server with their profiles
func (r *memberRepository) ListByServer(serverID string) ([]models.Member, error) {
	var members []models.Member
	err := r.db.Preload("Profile").Where("server_id = ?", serverID).Find(&members).Error
	return members, err
}

// UpdateRole changes a member's role
func (r *memberRepository) UpdateRole(id, role string) error {
	return r.db.Model(&models.Member{}).Where("id = ?", id).Update("role", role).Error
}

// Delete removes a member by its ID
func (r *memberRepository) Delete(id string) error {
	return r.db.Delete(&models.Member{}, "id = ?", id).Error
}
