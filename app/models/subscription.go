package models

import "time"

const (
	BillingCycleMonthly = "monthly"
	BillingCycleYearly  = "yearly"
)

const (
	SubscriptionStatusActive    = "active"
	SubscriptionStatusPending   = "pending"
	SubscriptionStatusCancelled = "cancelled"
	SubscriptionStatusExpired   = "expired"
)

// Subscription is the durable record of which plan and billing cycle a tenant
// currently holds. The unique index on user_id enforces the at-most-one
// current subscription invariant; plan changes overwrite the row.
type Subscription struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	UserID           uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	PlanID           uint       `gorm:"not null;index" json:"plan_id"`
	BillingCycle     string     `gorm:"type:varchar(16);not null;default:'monthly'" json:"billing_cycle"`
	Status           string     `gorm:"type:varchar(32);not null;default:'pending';index" json:"status"`
	CurrentPeriodEnd *time.Time `gorm:"type:timestamp;default:null" json:"current_period_end,omitempty"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsValidBillingCycle reports whether the given cycle is one we bill for.
func IsValidBillingCycle(cycle string) bool {
	return cycle == BillingCycleMonthly || cycle == BillingCycleYearly
}

// CycleDuration returns the subscription period granted by a billing cycle,
// anchored at the given time.
func CycleDuration(cycle string, from time.Time) time.Time {
	if cycle == BillingCycleYearly {
		return from.AddDate(1, 0, 0)
	}
	return from.AddDate(0, 1, 0)
}
