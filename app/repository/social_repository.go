package repository

import (
	"github.com/shivajik/profilelinks/app/models"
	"gorm.io/gorm"
)

// socialRepository implements the SocialRepository interface
type socialRepository struct {
	db *gorm.DB
}

// NewSocialRepository creates a new social link repository instance
func NewSocialRepository(db *gorm.DB) SocialRepository {
	return &socialRepository{db: db}
}

func (r *socialRepository) Create(social *models.SocialLink) error {
	return r.db.Create(social).Error
}

func (r *socialRepository) GetByUserID(userID uint) ([]models.SocialLink, error) {
	var socials []models.SocialLink
	err := r.db.Where("user_id = ?", userID).Order("position ASC, id ASC").Find(&socials).Error
	return socials, err
}

func (r *socialRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.SocialLink{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
