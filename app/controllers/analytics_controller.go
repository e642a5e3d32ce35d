package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/shivajik/profilelinks/app/repository"
	"github.com/shivajik/profilelinks/internal/pkg/entitlements"
	"github.com/shivajik/profilelinks/internal/pkg/usercontext"
)

// HandleGetAnalyticsSummary returns aggregate view and click counters for the
// tenant. Gated on the plan's analytics feature flag.
func HandleGetAnalyticsSummary(c *fiber.Ctx) error {
	ok, resp := requireEntitlement(c, entitlements.ActionUseAnalytics)
	if !ok {
		return resp
	}
	userID := usercontext.GetUserID(c)

	summary, err := repository.GetGlobalRepositories().Analytics.GetSummary(userID)
	if err != nil {
		log.Printf("[analytics] failed to load summary for user %d: %v", userID, err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "Could not load analytics")
	}

	return c.JSON(fiber.Map{"summary": summary})
}
