package repository

import (
	"gorm.io/gorm"

	"github.com/ManuelReschke/ChatNest/app/models"
)

// profileRepository implements the ProfileRepository interface
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository instance
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Create creates a new profile in the database
func (r *profileRepository) Create(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

// GetByID retrieves a profile by its ID
func (r *profileRepository) GetByID(id string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByUserID retrieves the profile belonging to an auth user
func (r *profileRepository) GetByUserID(userID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update updates an existing profile in the database
func (r *profileRepository) Update(profile *models.Profile) error {
	return r.db.Save(profile).Error
}

// Delete removes a profile by its ID
func (r *profileRepository) Delete(id string) error {
	return r.db.Delete(&models.Profile{}, "id = ?", id).Error
}
