package controllers

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/shivajik/profilelinks/app/models"
	"github.com/shivajik/profilelinks/internal/pkg/billing"
	"github.com/shivajik/profilelinks/internal/pkg/cache"
	"github.com/shivajik/profilelinks/internal/pkg/constants"
	"github.com/shivajik/profilelinks/internal/pkg/database"
)

// HandleListPlans serves the public plan catalog, cheapest first. The catalog
// changes rarely, so responses come from redis when warm.
func HandleListPlans(c *fiber.Ctx) error {
	if raw, err := cache.Get(constants.CacheKeyActivePlans); err == nil && raw != "" {
		var plans []models.Plan
		if err := json.Unmarshal([]byte(raw), &plans); err == nil {
			return c.JSON(fiber.Map{"plans": plans})
		}
	}

	svc := billing.NewServiceFromDB(database.GetDB())
	plans, err := svc.ListActivePlans()
	if err != nil {
		log.Printf("[pricing] failed to load plan catalog: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "Could not load plans")
	}

	if raw, err := json.Marshal(plans); err == nil {
		_ = cache.Set(constants.CacheKeyActivePlans, string(raw), constants.PlanCacheTTL)
	}

	return c.JSON(fiber.Map{"plans": plans})
}
