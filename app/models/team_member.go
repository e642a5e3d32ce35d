package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	TeamMemberStatusInvited     = "invited"
	TeamMemberStatusActive      = "active"
	TeamMemberStatusDeactivated = "deactivated"
)

const (
	TeamRoleEditor = "editor"
	TeamRoleViewer = "viewer"
)

// TeamMember grants another account access to a tenant's workspace.
// Deactivated members do not count against the plan limit.
type TeamMember struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	OwnerID   uint           `gorm:"not null;index:idx_team_members_owner_email,priority:1" json:"owner_id"`
	Email     string         `gorm:"type:varchar(200);not null;index:idx_team_members_owner_email,priority:2" json:"email" validate:"required,email"`
	UserID    *uint          `gorm:"index" json:"user_id,omitempty"`
	Role      string         `gorm:"type:varchar(32);not null;default:'editor'" json:"role" validate:"oneof=editor viewer"`
	Status    string         `gorm:"type:varchar(32);not null;default:'invited';index" json:"status" validate:"oneof=invited active deactivated"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (m *TeamMember) Validate() error {
	v := validator.New()
	return v.Struct(m)
}
