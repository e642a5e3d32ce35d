package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SocialLink is a platform icon link on a tenant's profile. Socials count
// against the plan limit unconditionally.
type SocialLink struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	Platform  string         `gorm:"type:varchar(50);not null" json:"platform" validate:"required,min=2,max=50"`
	URL       string         `gorm:"type:varchar(2048);not null" json:"url" validate:"required,url,max=2048"`
	Position  int            `gorm:"not null;default:0" json:"position"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (s *SocialLink) Validate() error {
	v := validator.New()
	return v.Struct(s)
}
