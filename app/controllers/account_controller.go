package controllers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shivajik/profilelinks/app/models"
	"github.com/shivajik/profilelinks/app/repository"
	"github.com/shivajik/profilelinks/internal/pkg/usercontext"
)

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// HandleChangePassword rotates the tenant's password after re-checking the
// current one.
func HandleChangePassword(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	var req changePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Invalid request body")
	}
	if err := validator.New().Struct(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Current password and a new password of at least 6 characters are required")
	}

	repos := repository.GetGlobalRepositories()
	user, err := repos.User.GetByID(userID)
	if err != nil {
		log.Printf("[account] failed to load user %d: %v", userID, err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "Could not change password")
	}
	if !user.CheckPassword(req.CurrentPassword) {
		return jsonError(c, fiber.StatusUnauthorized, "invalid_credentials", "Current password is wrong")
	}

	if err := user.SetPassword(req.NewPassword); err != nil {
		log.Printf("[account] failed to hash password for user %d: %v", userID, err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "Could not change password")
	}
	if err := repos.User.Update(user); err != nil {
		log.Printf("[account] failed to store password for user %d: %v", userID, err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "Could not change password")
	}

	return c.JSON(fiber.Map{"success": true})
}

// HandleGetPlanLimits returns the tenant's current usage next to the limits
// of their plan, with unlimited sentinels rendered as the infinity label.
func HandleGetPlanLimits(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	usage := cachedUsage(userID)
	if usage == nil {
		log.Printf("[account] failed to count usage for user %d", userID)
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "Could not load plan limits")
	}

	plan := resolveActivePlan(userID)
	if plan == nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "Could not load plan limits")
	}

	return c.JSON(fiber.Map{
		"plan": fiber.Map{
			"id":   plan.ID,
			"name": plan.Name,
		},
		"usage": usage,
		"limits": fiber.Map{
			"links": fiber.Map{
				"used":  usage.Links,
				"max":   plan.MaxLinks,
				"label": models.LimitLabel(plan.MaxLinks, models.UnlimitedLinksThreshold),
			},
			"pages": fiber.Map{
				"used":  usage.Pages,
				"max":   plan.MaxPages,
				"label": models.LimitLabel(plan.MaxPages, models.UnlimitedPagesThreshold),
			},
			"blocks": fiber.Map{
				"used":  usage.Blocks,
				"max":   plan.MaxBlocks,
				"label": models.LimitLabel(plan.MaxBlocks, models.UnlimitedLinksThreshold),
			},
			"socials": fiber.Map{
				"used":  usage.Socials,
				"max":   plan.MaxSocials,
				"label": models.LimitLabel(plan.MaxSocials, models.UnlimitedLinksThreshold),
			},
			"team_members": fiber.Map{
				"used":  usage.TeamMembers,
				"max":   plan.MaxTeamMembers,
				"label": models.LimitLabel(plan.MaxTeamMembers, models.UnlimitedPagesThreshold),
			},
		},
		"features": fiber.Map{
			"qr_code":          plan.QRCodeEnabled,
			"analytics":        plan.AnalyticsEnabled,
			"custom_templates": plan.CustomTemplatesEnabled,
		},
	})
}
