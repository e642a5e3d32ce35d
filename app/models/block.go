package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	BlockTypeText    = "text"
	BlockTypeImage   = "image"
	BlockTypeVideo   = "video"
	BlockTypeDivider = "divider"
	BlockTypeMenu    = "menu"
)

// Block is a content section on a page (text, embedded media, menu section).
// Only active blocks count against the plan limit.
type Block struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	PageID    uint           `gorm:"not null;index" json:"page_id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	Type      string         `gorm:"type:varchar(32);not null" json:"type" validate:"required,oneof=text image video divider menu"`
	Content   string         `gorm:"type:longtext" json:"content"`
	Position  int            `gorm:"not null;default:0" json:"position"`
	IsActive  bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (b *Block) Validate() error {
	v := validator.New()
	return v.Struct(b)
}
