package models

import (
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Limits at or above these values are treated as unlimited and rendered as
// the infinity label in plan-limit payloads.
const (
	UnlimitedLinksThreshold = 999
	UnlimitedPagesThreshold = 99
)

const UnlimitedLabel = "∞"

// Plan defines the numeric limits and feature flags a subscription grants.
// Plans referenced by an active subscription stay resolvable by ID even when
// deactivated, so existing tenants keep their grandfathered limits.
type Plan struct {
	ID                     uint      `gorm:"primaryKey" json:"id"`
	Name                   string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name" validate:"required,min=2,max=100"`
	Description            string    `gorm:"type:varchar(255)" json:"description" validate:"max=255"`
	MonthlyPrice           string    `gorm:"type:decimal(10,2);not null;default:0" json:"monthly_price"`
	YearlyPrice            string    `gorm:"type:decimal(10,2);not null;default:0" json:"yearly_price"`
	MaxLinks               int       `gorm:"not null;default:0" json:"max_links" validate:"min=0"`
	MaxPages               int       `gorm:"not null;default:0" json:"max_pages" validate:"min=0"`
	MaxBlocks              int       `gorm:"not null;default:0" json:"max_blocks" validate:"min=0"`
	MaxSocials             int       `gorm:"not null;default:0" json:"max_socials" validate:"min=0"`
	MaxTeamMembers         int       `gorm:"not null;default:0" json:"max_team_members" validate:"min=0"`
	QRCodeEnabled          bool      `gorm:"default:false" json:"qr_code_enabled"`
	AnalyticsEnabled       bool      `gorm:"default:false" json:"analytics_enabled"`
	CustomTemplatesEnabled bool      `gorm:"default:false" json:"custom_templates_enabled"`
	IsActive               bool      `gorm:"default:true;index" json:"is_active"`
	IsFeatured             bool      `gorm:"default:false" json:"is_featured"`
	CreatedAt              time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *Plan) Validate() error {
	v := validator.New()
	return v.Struct(p)
}

// IsFree reports whether both billing cycles cost nothing.
func (p *Plan) IsFree() bool {
	return isZeroPrice(p.MonthlyPrice) && isZeroPrice(p.YearlyPrice)
}

func isZeroPrice(price string) bool {
	switch price {
	case "", "0", "0.0", "0.00":
		return true
	}
	return false
}

// LimitLabel renders a numeric limit for display, collapsing the unlimited
// sentinel to the infinity symbol.
func LimitLabel(limit, unlimitedThreshold int) string {
	if limit >= unlimitedThreshold {
		return UnlimitedLabel
	}
	return strconv.Itoa(limit)
}
