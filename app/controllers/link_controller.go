package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/shivajik/profilelinks/app/models"
	"github.com/shivajik/profilelinks/app/repository"
	"github.com/shivajik/profilelinks/internal/pkg/cache"
	"github.com/shivajik/profilelinks/internal/pkg/constants"
	"github.com/shivajik/profilelinks/internal/pkg/database"
	"github.com/shivajik/profilelinks/internal/pkg/entitlements"
	"github.com/shivajik/profilelinks/internal/pkg/metrics/counter"
	"github.com/shivajik/profilelinks/internal/pkg/shortener"
	"github.com/shivajik/profilelinks/internal/pkg/usercontext"
	"gorm.io/gorm"
)

type createLinkRequest struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	PageID   *uint  `json:"page_id"`
	Position int    `json:"position"`
}

// HandleListLinks returns all of the tenant's links.
func HandleListLinks(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	links, err := repository.GetGlobalRepositories().Link.GetByUserID(userID)
	if err != nil {
		log.Printf("[link] failed to list links for user %d: %v", userID, err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "Could not load links")
	}
	return c.JSON(fiber.Map{"links": links})
}

// HandleCreateLink adds a link to the tenant's profile, subject to the plan
// limit on active links.
func HandleCreateLink(c *fiber.Ctx) error {
	ok, resp := requireEntitlement(c, entitlements.ActionAddLink)
	if !ok {
		return resp
	}
	userID := usercontext.GetUserID(c)

	var req createLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Invalid request body")
	}

	shortCode, err := shortener.GenerateSecureSlug(constants.LinkShortCodeLength)
	if err != nil {
		log.Printf("[link] failed to generate short code: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "Could not create link")
	}

	link := &models.Link{
		UserID:    userID,
		PageID:    req.PageID,
		Title:     req.Title,
		URL:       req.URL,
		ShortCode: shortCode,
		Position:  req.Position,
		IsActive:  true,
	}
	if err := link.Validate(); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Title and a valid URL are required")
	}

	if err := repository.GetGlobalRepositories().Link.Create(link); err != nil {
		log.Printf("[link] failed to create link for user %d: %v", userID, err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "Could not create link")
	}
	cache.InvalidateUsage(userID)

	return c.Status(fiber.StatusCreated).JSON(link)
}

// HandleLinkRedirect resolves a short code to its target URL and counts the
// click. Public, no session required.
func HandleLinkRedirect(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return c.SendStatus(fiber.StatusNotFound)
	}

	db := database.GetDB()
	link, err := models.FindLinkByShortCode(db, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		log.Printf("[link] redirect lookup failed for %s: %v", code, err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	// Clicks are buffered in redis and flushed in batches; fall back to a
	// direct update when redis is unavailable.
	if err := counter.AddLinkClick(link.ID); err != nil {
		if err := models.RecordLinkClick(db, link.ID); err != nil {
			log.Printf("[link] failed to record click for %s: %v", code, err)
		}
	}

	return c.Redirect(link.URL, fiber.StatusFound)
}
