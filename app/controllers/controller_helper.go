package controllers

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shivajik/profilelinks/app/models"
	"github.com/shivajik/profilelinks/app/repository"
	"github.com/shivajik/profilelinks/internal/pkg/cache"
	"github.com/shivajik/profilelinks/internal/pkg/constants"
	"github.com/shivajik/profilelinks/internal/pkg/entitlements"
	"github.com/shivajik/profilelinks/internal/pkg/usercontext"
	"gorm.io/gorm"
)

func jsonError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error":   code,
		"message": message,
	})
}

// resolveActivePlan loads the plan behind the tenant's current subscription.
// Returns nil (not an error) when the tenant has no subscription yet or the
// plan row is gone; entitlement checks fail open on missing context.
func resolveActivePlan(userID uint) *models.Plan {
	repos := repository.GetGlobalRepositories()

	sub, err := repos.Subscription.GetByUserID(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		// No subscription row yet: the tenant is on the cheapest active
		// plan, which the catalog lists first.
		plans, err := repos.Plan.ListActive()
		if err != nil || len(plans) == 0 {
			return nil
		}
		return &plans[0]
	}

	// Grandfathering: resolve by ID even if the plan was deactivated.
	plan, err := repos.Plan.GetByID(sub.PlanID)
	if err != nil {
		return nil
	}
	return plan
}

// cachedUsage returns the tenant's usage snapshot, via the redis cache when
// warm. Resource-creating handlers invalidate the key after writing.
func cachedUsage(userID uint) *models.UsageSnapshot {
	key := cache.UsageKey(userID)
	if raw, err := cache.Get(key); err == nil && raw != "" {
		var snapshot models.UsageSnapshot
		if err := json.Unmarshal([]byte(raw), &snapshot); err == nil {
			return &snapshot
		}
	}

	snapshot, err := repository.GetGlobalRepositories().Usage.CountUsage(userID)
	if err != nil {
		return nil
	}
	if raw, err := json.Marshal(snapshot); err == nil {
		_ = cache.Set(key, string(raw), constants.UsageCacheTTL)
	}
	return snapshot
}

// requireEntitlement runs the plan-limit gate for the logged-in tenant. The
// bool reports whether the request may proceed; when it may not, the handler
// must return the accompanying response and stop.
func requireEntitlement(c *fiber.Ctx, action entitlements.Action) (bool, error) {
	userID := usercontext.GetUserID(c)
	decision := entitlements.CanPerform(action, cachedUsage(userID), resolveActivePlan(userID))
	if decision.Allowed {
		return true, nil
	}
	// Denial is a normal decision, not an error payload.
	return false, c.Status(fiber.StatusForbidden).JSON(decision)
}

// slugify maps a page title to a URL slug.
func slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
