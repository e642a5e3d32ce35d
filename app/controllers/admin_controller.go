package controllers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shivajik/profilelinks/app/models"
	"github.com/shivajik/profilelinks/internal/pkg/cache"
	"github.com/shivajik/profilelinks/internal/pkg/constants"
	"github.com/shivajik/profilelinks/internal/pkg/database"
)

type createPlanRequest struct {
	Name                   string `json:"name"`
	Description            string `json:"description"`
	MonthlyPrice           string `json:"monthly_price"`
	YearlyPrice            string `json:"yearly_price"`
	MaxLinks               int    `json:"max_links"`
	MaxPages               int    `json:"max_pages"`
	MaxBlocks              int    `json:"max_blocks"`
	MaxSocials             int    `json:"max_socials"`
	MaxTeamMembers         int    `json:"max_team_members"`
	QRCodeEnabled          bool   `json:"qr_code_enabled"`
	AnalyticsEnabled       bool   `json:"analytics_enabled"`
	CustomTemplatesEnabled bool   `json:"custom_templates_enabled"`
	IsFeatured             bool   `json:"is_featured"`
}

type createPromoCodeRequest struct {
	Code            string     `json:"code"`
	DiscountPercent int        `json:"discount_percent"`
	MaxUses         int        `json:"max_uses"`
	ValidFrom       *time.Time `json:"valid_from"`
	ValidUntil      *time.Time `json:"valid_until"`
}

// HandleAdminCreatePlan adds a plan to the catalog and drops the cached
// catalog so the new plan shows up immediately.
func HandleAdminCreatePlan(c *fiber.Ctx) error {
	var req createPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Invalid request body")
	}

	plan := &models.Plan{
		Name:                   req.Name,
		Description:            req.Description,
		MonthlyPrice:           req.MonthlyPrice,
		YearlyPrice:            req.YearlyPrice,
		MaxLinks:               req.MaxLinks,
		MaxPages:               req.MaxPages,
		MaxBlocks:              req.MaxBlocks,
		MaxSocials:             req.MaxSocials,
		MaxTeamMembers:         req.MaxTeamMembers,
		QRCodeEnabled:          req.QRCodeEnabled,
		AnalyticsEnabled:       req.AnalyticsEnabled,
		CustomTemplatesEnabled: req.CustomTemplatesEnabled,
		IsActive:               true,
		IsFeatured:             req.IsFeatured,
	}
	if err := plan.Validate(); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Plan name is required")
	}

	if err := database.GetDB().Create(plan).Error; err != nil {
		log.Printf("[admin] failed to create plan %s: %v", req.Name, err)
		return jsonError(c, fiber.StatusConflict, "plan_exists", "A plan with this name already exists")
	}
	_ = cache.Delete(constants.CacheKeyActivePlans)

	return c.Status(fiber.StatusCreated).JSON(plan)
}

// HandleAdminDeactivatePlan retires a plan from sale. Tenants already
// subscribed keep its limits; it just stops being purchasable.
func HandleAdminDeactivatePlan(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Invalid plan id")
	}

	result := database.GetDB().Model(&models.Plan{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		log.Printf("[admin] failed to deactivate plan %d: %v", id, result.Error)
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "Could not deactivate plan")
	}
	if result.RowsAffected == 0 {
		return jsonError(c, fiber.StatusNotFound, "plan_not_found", "Plan not found")
	}
	_ = cache.Delete(constants.CacheKeyActivePlans)

	return c.JSON(fiber.Map{"success": true})
}

// HandleAdminCreatePromoCode registers a promo code. Codes are stored
// uppercase so lookups stay case-insensitive.
func HandleAdminCreatePromoCode(c *fiber.Ctx) error {
	var req createPromoCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Invalid request body")
	}

	code := models.NormalizePromoCode(req.Code)
	if code == "" || req.DiscountPercent < 1 || req.DiscountPercent > 100 {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "A code and a discount between 1 and 100 are required")
	}

	promo := &models.PromoCode{
		Code:            code,
		DiscountPercent: req.DiscountPercent,
		MaxUses:         req.MaxUses,
		ValidFrom:       req.ValidFrom,
		ValidUntil:      req.ValidUntil,
		IsActive:        true,
	}
	if err := database.GetDB().Create(promo).Error; err != nil {
		log.Printf("[admin] failed to create promo code %s: %v", code, err)
		return jsonError(c, fiber.StatusConflict, "promo_code_exists", "This promo code already exists")
	}

	return c.Status(fiber.StatusCreated).JSON(promo)
}
