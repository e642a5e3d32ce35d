package models

import (
	"strings"
	"time"
)

// PromoCode grants a percentage discount on order amounts. Codes are stored
// normalized upper-case and matched case-insensitively. Discounts never stack;
// one code per order.
type PromoCode struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Code            string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"code" validate:"required,min=2,max=50"`
	DiscountPercent int        `gorm:"not null" json:"discount_percent" validate:"min=0,max=100"`
	MaxUses         int        `gorm:"not null;default:0" json:"max_uses"`
	UsedCount       int        `gorm:"not null;default:0" json:"used_count"`
	ValidFrom       *time.Time `gorm:"type:timestamp;default:null" json:"valid_from,omitempty"`
	ValidUntil      *time.Time `gorm:"type:timestamp;default:null" json:"valid_until,omitempty"`
	IsActive        bool       `gorm:"default:true;index" json:"is_active"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// NormalizePromoCode maps user input to the stored representation.
func NormalizePromoCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsRedeemableAt reports whether the code can still discount an order at the
// given time. MaxUses of zero means the code is uncapped.
func (p *PromoCode) IsRedeemableAt(t time.Time) bool {
	if !p.IsActive {
		return false
	}
	if p.ValidFrom != nil && t.Before(*p.ValidFrom) {
		return false
	}
	if p.ValidUntil != nil && t.After(*p.ValidUntil) {
		return false
	}
	if p.MaxUses > 0 && p.UsedCount >= p.MaxUses {
		return false
	}
	return true
}
