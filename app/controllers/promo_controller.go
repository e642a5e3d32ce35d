package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/shivajik/profilelinks/internal/pkg/billing"
	"github.com/shivajik/profilelinks/internal/pkg/database"
)

type validatePromoRequest struct {
	Code string `json:"code"`
}

// HandleValidatePromoCode checks a promo code for the checkout form without
// consuming a redemption. Matching is case-insensitive.
func HandleValidatePromoCode(c *fiber.Ctx) error {
	var req validatePromoRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Invalid request body")
	}

	svc := billing.NewServiceFromDB(database.GetDB())
	promo, err := svc.ValidatePromoCode(req.Code)
	if err != nil {
		if errors.Is(err, billing.ErrInvalidPromoCode) {
			return jsonError(c, fiber.StatusBadRequest, "invalid_promo_code", "This promo code is not valid")
		}
		log.Printf("[promo] validation failed for %q: %v", req.Code, err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "Could not validate promo code")
	}

	return c.JSON(fiber.Map{
		"valid":           true,
		"code":            promo.Code,
		"discountPercent": promo.DiscountPercent,
	})
}
