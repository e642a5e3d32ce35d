package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/shivajik/profilelinks/app/models"
	"github.com/shivajik/profilelinks/app/repository"
	"github.com/shivajik/profilelinks/internal/pkg/cache"
	"github.com/shivajik/profilelinks/internal/pkg/entitlements"
	"github.com/shivajik/profilelinks/internal/pkg/usercontext"
)

type createSocialRequest struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Position int    `json:"position"`
}

// HandleCreateSocial adds a social icon link, subject to the plan limit.
func HandleCreateSocial(c *fiber.Ctx) error {
	ok, resp := requireEntitlement(c, entitlements.ActionAddSocial)
	if !ok {
		return resp
	}
	userID := usercontext.GetUserID(c)

	var req createSocialRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Invalid request body")
	}

	social := &models.SocialLink{
		UserID:   userID,
		Platform: req.Platform,
		URL:      req.URL,
		Position: req.Position,
	}
	if err := social.Validate(); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Platform and a valid URL are required")
	}

	if err := repository.GetGlobalRepositories().Social.Create(social); err != nil {
		log.Printf("[social] failed to create social link for user %d: %v", userID, err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "Could not create social link")
	}
	cache.InvalidateUsage(userID)

	return c.Status(fiber.StatusCreated).JSON(social)
}
