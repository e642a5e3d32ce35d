package controllers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shivajik/profilelinks/app/repository"
	"github.com/shivajik/profilelinks/internal/pkg/billing"
	"github.com/shivajik/profilelinks/internal/pkg/database"
	"github.com/shivajik/profilelinks/internal/pkg/mail"
	"github.com/shivajik/profilelinks/internal/pkg/usercontext"
)

type createOrderRequest struct {
	PlanID       uint   `json:"planId" validate:"required"`
	BillingCycle string `json:"billingCycle"`
	PromoCode    string `json:"promoCode"`
}

type verifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpayOrderId" validate:"required"`
	RazorpayPaymentID string `json:"razorpayPaymentId" validate:"required"`
	RazorpaySignature string `json:"razorpaySignature" validate:"required"`
}

// HandleGetSubscription returns the tenant's current subscription together
// with the plan it grants, or an empty payload when none exists yet.
func HandleGetSubscription(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	svc := billing.NewServiceFromDB(database.GetDB())
	sub, err := svc.CurrentSubscription(userID)
	if err != nil {
		log.Printf("[payment] failed to load subscription for user %d: %v", userID, err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "Could not load subscription")
	}
	if sub == nil {
		return c.JSON(fiber.Map{"subscription": nil, "plan": nil})
	}

	plan, err := svc.GetPlan(sub.PlanID)
	if err != nil && !errors.Is(err, billing.ErrPlanNotFound) {
		log.Printf("[payment] failed to load plan %d for user %d: %v", sub.PlanID, userID, err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "Could not load subscription")
	}

	return c.JSON(fiber.Map{"subscription": sub, "plan": plan})
}

// HandleCreateOrder opens a gateway order for a plan purchase. Fully
// discounted and free-plan checkouts settle immediately without a gateway
// round trip.
func HandleCreateOrder(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Invalid request body")
	}
	if err := validator.New().Struct(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "planId is required")
	}

	svc := billing.NewServiceFromDB(database.GetDB())
	result, err := svc.CreateOrder(c.Context(), userID, req.PlanID, req.BillingCycle, req.PromoCode)
	if err != nil {
		switch {
		case errors.Is(err, billing.ErrPlanNotFound):
			return jsonError(c, fiber.StatusBadRequest, "plan_not_found", "The selected plan is not available")
		case errors.Is(err, billing.ErrInvalidPromoCode):
			return jsonError(c, fiber.StatusBadRequest, "invalid_promo_code", "This promo code is not valid")
		}
		log.Printf("[payment] create order failed for user %d plan %d: %v", userID, req.PlanID, err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "Could not create order")
	}

	if result.Free {
		sendActivationReceipt(userID, req.PlanID, req.BillingCycle)
		return c.JSON(fiber.Map{"free": true})
	}

	return c.JSON(fiber.Map{
		"free":     false,
		"orderId":  result.OrderID,
		"amount":   result.Amount,
		"currency": result.Currency,
		"keyId":    result.KeyID,
	})
}

// HandleVerifyPayment settles a returned gateway receipt and activates the
// subscription. A bad signature is a client error; a verified payment whose
// activation keeps failing is a server error the tenant must contact support
// about.
func HandleVerifyPayment(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	var req verifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Invalid request body")
	}
	if err := validator.New().Struct(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Missing payment verification fields")
	}

	svc := billing.NewServiceFromDB(database.GetDB())
	sub, err := svc.VerifyPayment(userID, billing.VerifyInput{
		OrderID:   req.RazorpayOrderID,
		PaymentID: req.RazorpayPaymentID,
		Signature: req.RazorpaySignature,
	})
	if err != nil {
		switch {
		case errors.Is(err, billing.ErrSignatureInvalid):
			return jsonError(c, fiber.StatusBadRequest, "signature_invalid", "Payment verification failed")
		case errors.Is(err, billing.ErrOrderNotFound):
			return jsonError(c, fiber.StatusBadRequest, "order_not_found", "Order not found")
		case errors.Is(err, billing.ErrOrderClosed):
			return jsonError(c, fiber.StatusBadRequest, "order_closed", "This order has already been settled. Please start a new checkout.")
		case errors.Is(err, billing.ErrActivationFailed):
			return jsonError(c, fiber.StatusInternalServerError, "activation_failed",
				"Your payment was received but activation failed. Please contact support.")
		}
		log.Printf("[payment] verify failed for user %d order %s: %v", userID, req.RazorpayOrderID, err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "Could not verify payment")
	}

	sendActivationReceipt(userID, sub.PlanID, sub.BillingCycle)

	return c.JSON(fiber.Map{"ok": true, "subscription": sub})
}

// sendActivationReceipt emails the tenant about their new subscription.
// Best effort; checkout never fails on mail trouble.
func sendActivationReceipt(userID, planID uint, billingCycle string) {
	repos := repository.GetGlobalRepositories()
	user, err := repos.User.GetByID(userID)
	if err != nil {
		log.Printf("[payment] cannot send receipt, user %d not found: %v", userID, err)
		return
	}
	plan, err := repos.Plan.GetByID(planID)
	if err != nil {
		log.Printf("[payment] cannot send receipt, plan %d not found: %v", planID, err)
		return
	}
	go func() {
		if err := mail.SendSubscriptionActivated(user.Email, plan.Name, billingCycle); err != nil {
			log.Printf("[payment] failed to send activation mail to %s: %v", user.Email, err)
		}
	}()
}
