package repository

import (
	"github.com/shivajik/profilelinks/app/models"
	"gorm.io/gorm"
)

// linkRepository implements the LinkRepository interface
type linkRepository struct {
	db *gorm.DB
}

// NewLinkRepository creates a new link repository instance
func NewLinkRepository(db *gorm.DB) LinkRepository {
	return &linkRepository{db: db}
}

func (r *linkRepository) Create(link *models.Link) error {
	return r.db.Create(link).Error
}

func (r *linkRepository) GetByUserID(userID uint) ([]models.Link, error) {
	var links []models.Link
	err := r.db.Where("user_id = ?", userID).Order("position ASC, id ASC").Find(&links).Error
	return links, err
}

func (r *linkRepository) CountActiveByUserID(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Link{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Count(&count).Error
	return count, err
}
