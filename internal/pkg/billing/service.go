package billing

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shivajik/profilelinks/app/models"
	"github.com/shivajik/profilelinks/internal/pkg/env"
	"gorm.io/gorm"
)

var (
	ErrPlanNotFound     = errors.New("plan not found")
	ErrInvalidPromoCode = errors.New("invalid promo code")
	ErrOrderNotFound    = errors.New("order not found")
	ErrSignatureInvalid = errors.New("payment signature invalid")
	// ErrOrderClosed means the order already settled as verified or failed.
	// An order transitions out of created exactly once; a failed checkout
	// needs a fresh order.
	ErrOrderClosed = errors.New("order already settled")
	// ErrActivationFailed means the payment was verified but the subscription
	// write kept failing. Money has already moved; the caller must surface
	// support guidance instead of retrying checkout.
	ErrActivationFailed = errors.New("subscription activation failed")
)

const activationAttempts = 3

// Service orchestrates checkout: plan resolution, promo discounting, gateway
// order creation and payment settlement into the subscription record.
type Service struct {
	repo    Repository
	gateway Gateway
	secret  string
	now     func() time.Time
}

// NewService creates a billing service from injected collaborators.
func NewService(repo Repository, gateway Gateway, secret string) *Service {
	return &Service{
		repo:    repo,
		gateway: gateway,
		secret:  secret,
		now:     time.Now,
	}
}

// NewServiceFromDB creates a billing service wired to the Razorpay client and
// shared secret from the environment.
func NewServiceFromDB(db *gorm.DB) *Service {
	return NewService(
		NewRepository(db),
		NewRazorpayClientFromEnv(),
		env.GetEnv("RAZORPAY_KEY_SECRET", ""),
	)
}

// ListActivePlans returns the purchasable catalog sorted by ascending price.
func (s *Service) ListActivePlans() ([]models.Plan, error) {
	return s.repo.ListActivePlans()
}

// GetPlan resolves a plan by ID. Inactive plans resolve too, so tenants
// already subscribed to a retired plan keep their limits.
func (s *Service) GetPlan(id uint) (*models.Plan, error) {
	plan, err := s.repo.GetPlan(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

// ValidatePromoCode checks a code without consuming it. Repeated validation
// never changes the remaining usage count; consumption happens only at
// payment verification.
func (s *Service) ValidatePromoCode(code string) (*models.PromoCode, error) {
	normalized := models.NormalizePromoCode(code)
	if normalized == "" {
		return nil, ErrInvalidPromoCode
	}

	promo, err := s.repo.FindPromoCode(normalized)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidPromoCode
		}
		return nil, err
	}
	if !promo.IsRedeemableAt(s.now()) {
		return nil, ErrInvalidPromoCode
	}
	return promo, nil
}

// CurrentSubscription returns the tenant's current subscription, or nil when
// none exists yet.
func (s *Service) CurrentSubscription(userID uint) (*models.Subscription, error) {
	sub, err := s.repo.GetSubscriptionByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return sub, nil
}

// CreateOrder computes the amount for a plan/cycle (after an optional promo
// discount) and opens a gateway order for it. A zero amount skips the gateway
// entirely and activates the subscription synchronously.
func (s *Service) CreateOrder(ctx context.Context, userID, planID uint, billingCycle, promoCode string) (*OrderResult, error) {
	plan, err := s.GetPlan(planID)
	if err != nil {
		return nil, err
	}
	if !plan.IsActive {
		return nil, ErrPlanNotFound
	}
	if !models.IsValidBillingCycle(billingCycle) {
		billingCycle = models.BillingCycleMonthly
	}

	price := plan.MonthlyPrice
	if billingCycle == models.BillingCycleYearly {
		price = plan.YearlyPrice
	}
	amount, err := ParsePriceToPaise(price)
	if err != nil {
		return nil, err
	}

	normalizedPromo := ""
	if models.NormalizePromoCode(promoCode) != "" {
		promo, err := s.ValidatePromoCode(promoCode)
		if err != nil {
			// An unusable code aborts checkout; silently charging full
			// price would surprise the customer.
			return nil, err
		}
		normalizedPromo = promo.Code
		amount = ApplyDiscount(amount, promo.DiscountPercent)
	}

	if amount == 0 {
		if err := s.activateSubscription(userID, planID, billingCycle); err != nil {
			return nil, err
		}
		return &OrderResult{Free: true}, nil
	}

	currency := env.GetEnv("RAZORPAY_CURRENCY", "INR")
	receipt := uuid.NewString()
	gatewayOrder, err := s.gateway.CreateOrder(ctx, amount, currency, receipt)
	if err != nil {
		return nil, err
	}

	order := &models.PaymentOrder{
		UserID:         userID,
		PlanID:         planID,
		BillingCycle:   billingCycle,
		PromoCode:      normalizedPromo,
		AmountPaise:    amount,
		Currency:       currency,
		GatewayOrderID: gatewayOrder.ID,
		Receipt:        receipt,
		Status:         models.OrderStatusCreated,
	}
	if err := s.repo.CreateOrder(order); err != nil {
		return nil, err
	}

	return &OrderResult{
		Free:     false,
		OrderID:  gatewayOrder.ID,
		Amount:   amount,
		Currency: currency,
		KeyID:    s.gateway.Key(),
	}, nil
}

// VerifyPayment settles a returned gateway receipt. On a valid signature the
// order transitions to verified and the subscription is upserted; on a
// mismatch the order is marked failed and the subscription stays untouched.
// Only an order in the created state can settle, and only for its owner;
// anything else leaves the order as it is.
func (s *Service) VerifyPayment(userID uint, in VerifyInput) (*models.Subscription, error) {
	order, err := s.repo.GetOrderByGatewayID(in.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	if order.Status != models.OrderStatusCreated {
		return nil, ErrOrderClosed
	}

	if !VerifyPaymentSignature(in.OrderID, in.PaymentID, in.Signature, s.secret) {
		if err := s.repo.UpdateOrderStatus(in.OrderID, models.OrderStatusFailed); err != nil {
			log.Printf("[billing] failed to mark order %s failed: %v", in.OrderID, err)
		}
		return nil, ErrSignatureInvalid
	}

	if err := s.repo.UpdateOrderStatus(in.OrderID, models.OrderStatusVerified); err != nil {
		return nil, err
	}

	// The verified order and the subscription write are one logical unit:
	// the money already moved, so retry before giving up.
	if err := s.activateSubscription(userID, order.PlanID, order.BillingCycle); err != nil {
		log.Printf("[billing] ALERT: payment %s verified but activation failed for user %d: %v", in.PaymentID, userID, err)
		return nil, ErrActivationFailed
	}

	// Promo consumption is at-least-once and must never roll back the
	// activation.
	if order.PromoCode != "" {
		if err := s.repo.ConsumePromoCode(order.PromoCode); err != nil {
			log.Printf("[billing] failed to consume promo code %s: %v", order.PromoCode, err)
		}
	}

	return s.repo.GetSubscriptionByUserID(userID)
}

func (s *Service) activateSubscription(userID, planID uint, billingCycle string) error {
	periodEnd := models.CycleDuration(billingCycle, s.now())
	sub := &models.Subscription{
		UserID:           userID,
		PlanID:           planID,
		BillingCycle:     billingCycle,
		Status:           models.SubscriptionStatusActive,
		CurrentPeriodEnd: &periodEnd,
	}

	var err error
	for attempt := 1; attempt <= activationAttempts; attempt++ {
		if err = s.repo.UpsertSubscription(sub); err == nil {
			return nil
		}
		log.Printf("[billing] subscription upsert attempt %d/%d for user %d failed: %v", attempt, activationAttempts, userID, err)
	}
	return err
}
