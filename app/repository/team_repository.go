package repository

import (
	"github.com/shivajik/profilelinks/app/models"
	"gorm.io/gorm"
)

// teamRepository implements the TeamRepository interface
type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository instance
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

func (r *teamRepository) GetByOwnerID(ownerID uint) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.Where("owner_id = ?", ownerID).Order("id ASC").Find(&members).Error
	return members, err
}

// CountCountableByOwnerID counts members that occupy plan quota; deactivated
// members are free.
func (r *teamRepository) CountCountableByOwnerID(ownerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.TeamMember{}).
		Where("owner_id = ? AND status <> ?", ownerID, models.TeamMemberStatusDeactivated).
		Count(&count).Error
	return count, err
}
