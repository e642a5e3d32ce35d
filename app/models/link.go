package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Link is a single outbound link on a tenant's profile page. Only active
// links count against the plan limit.
type Link struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     uint           `gorm:"not null;index" json:"user_id"`
	PageID     *uint          `gorm:"index" json:"page_id,omitempty"`
	Title      string         `gorm:"type:varchar(255);not null" json:"title" validate:"required,min=1,max=255"`
	URL        string         `gorm:"type:varchar(2048);not null" json:"url" validate:"required,url,max=2048"`
	ShortCode  string         `gorm:"type:varchar(16);uniqueIndex" json:"short_code"`
	Position   int            `gorm:"not null;default:0" json:"position"`
	IsActive   bool           `gorm:"default:true;index" json:"is_active"`
	ClickCount int64          `gorm:"not null;default:0" json:"click_count"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (l *Link) Validate() error {
	v := validator.New()
	return v.Struct(l)
}

func FindLinkByShortCode(db *gorm.DB, code string) (*Link, error) {
	var link Link
	err := db.Where("short_code = ? AND is_active = ?", code, true).First(&link).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// RecordLinkClick bumps the click counter without touching updated_at.
func RecordLinkClick(db *gorm.DB, id uint) error {
	return db.Model(&Link{}).Where("id = ?", id).
		UpdateColumn("click_count", gorm.Expr("click_count + 1")).Error
}
