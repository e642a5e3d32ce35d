package models

import "time"

const (
	OrderStatusCreated  = "created"
	OrderStatusVerified = "verified"
	OrderStatusFailed   = "failed"
)

// PaymentOrder mirrors a gateway-side payment intent. Lifecycle is
// created -> verified on a successful signature check, or created -> failed on
// a mismatch or gateway error. A failed order is never retried in place; the
// client restarts checkout with a fresh order.
type PaymentOrder struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	PlanID         uint      `gorm:"not null" json:"plan_id"`
	BillingCycle   string    `gorm:"type:varchar(16);not null" json:"billing_cycle"`
	PromoCode      string    `gorm:"type:varchar(50);default:''" json:"promo_code,omitempty"`
	AmountPaise    int64     `gorm:"not null" json:"amount_paise"`
	Currency       string    `gorm:"type:varchar(8);not null;default:'INR'" json:"currency"`
	GatewayOrderID string    `gorm:"type:varchar(191);uniqueIndex;not null" json:"gateway_order_id"`
	Receipt        string    `gorm:"type:varchar(64);default:''" json:"receipt"`
	Status         string    `gorm:"type:varchar(16);not null;default:'created';index" json:"status"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
