package repository

import (
	"github.com/shivajik/profilelinks/app/models"
	"gorm.io/gorm"
)

// blockRepository implements the BlockRepository interface
type blockRepository struct {
	db *gorm.DB
}

// NewBlockRepository creates a new block repository instance
func NewBlockRepository(db *gorm.DB) BlockRepository {
	return &blockRepository{db: db}
}

func (r *blockRepository) Create(block *models.Block) error {
	return r.db.Create(block).Error
}

func (r *blockRepository) GetByPageID(pageID uint) ([]models.Block, error) {
	var blocks []models.Block
	err := r.db.Where("page_id = ?", pageID).Order("position ASC, id ASC").Find(&blocks).Error
	return blocks, err
}

func (r *blockRepository) CountActiveByUserID(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Block{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Count(&count).Error
	return count, err
}
