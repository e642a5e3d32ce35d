package controllers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shivajik/profilelinks/app/models"
	"github.com/shivajik/profilelinks/app/repository"
	"github.com/shivajik/profilelinks/internal/pkg/cache"
	"github.com/shivajik/profilelinks/internal/pkg/entitlements"
	"github.com/shivajik/profilelinks/internal/pkg/metrics/counter"
	"github.com/shivajik/profilelinks/internal/pkg/usercontext"
	"github.com/shivajik/profilelinks/internal/pkg/utils"
	"gorm.io/gorm"
)

type createPageRequest struct {
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Template string `json:"template"`
}

type createBlockRequest struct {
	Type     string `json:"type"`
	Content  string `json:"content"`
	Position int    `json:"position"`
}

// HandleCreatePage creates a profile page, subject to the plan limit. Pages
// count against the limit whether active or not.
func HandleCreatePage(c *fiber.Ctx) error {
	ok, resp := requireEntitlement(c, entitlements.ActionAddPage)
	if !ok {
		return resp
	}
	userID := usercontext.GetUserID(c)

	var req createPageRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Invalid request body")
	}

	slug := req.Slug
	if slug == "" {
		slug = slugify(req.Title)
	}

	page := &models.Page{
		UserID:   userID,
		Title:    req.Title,
		Slug:     slug,
		Template: req.Template,
		IsActive: true,
	}
	if page.Template == "" {
		page.Template = "default"
	}
	if err := page.Validate(); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Title and slug are required")
	}

	if err := repository.GetGlobalRepositories().Page.Create(page); err != nil {
		log.Printf("[page] failed to create page for user %d: %v", userID, err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "Could not create page")
	}
	cache.InvalidateUsage(userID)

	return c.Status(fiber.StatusCreated).JSON(page)
}

// HandleCreateBlock adds a content block to one of the tenant's pages,
// subject to the plan limit on active blocks.
func HandleCreateBlock(c *fiber.Ctx) error {
	ok, resp := requireEntitlement(c, entitlements.ActionAddBlock)
	if !ok {
		return resp
	}
	userID := usercontext.GetUserID(c)

	pageID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Invalid page id")
	}

	repos := repository.GetGlobalRepositories()
	page, err := repos.Page.GetByID(uint(pageID))
	if err != nil || page.UserID != userID {
		return jsonError(c, fiber.StatusNotFound, "not_found", "Page not found")
	}

	var req createBlockRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Invalid request body")
	}

	block := &models.Block{
		PageID:   page.ID,
		UserID:   userID,
		Type:     req.Type,
		Content:  req.Content,
		Position: req.Position,
		IsActive: true,
	}
	if err := block.Validate(); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Unknown block type")
	}

	if err := repos.Block.Create(block); err != nil {
		log.Printf("[page] failed to create block for user %d: %v", userID, err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "Could not create block")
	}
	cache.InvalidateUsage(userID)

	return c.Status(fiber.StatusCreated).JSON(block)
}

// HandleGetPublicPage serves a published page with its blocks, links and
// socials, and counts the view. Public, no session required.
func HandleGetPublicPage(c *fiber.Ctx) error {
	slug := c.Params("slug")

	repos := repository.GetGlobalRepositories()
	page, err := repos.Page.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "Page not found")
		}
		log.Printf("[page] public lookup failed for %s: %v", slug, err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "Could not load page")
	}

	owner, err := repos.User.GetByID(page.UserID)
	if err != nil {
		log.Printf("[page] failed to load owner for page %d: %v", page.ID, err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "Could not load page")
	}
	// Pages of disabled or not yet activated accounts stay hidden.
	if !owner.IsActive() {
		return jsonError(c, fiber.StatusNotFound, "not_found", "Page not found")
	}

	blocks, err := repos.Block.GetByPageID(page.ID)
	if err != nil {
		log.Printf("[page] failed to load blocks for page %d: %v", page.ID, err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "Could not load page")
	}
	links, err := repos.Link.GetByUserID(page.UserID)
	if err != nil {
		log.Printf("[page] failed to load links for page %d: %v", page.ID, err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "Could not load page")
	}
	socials, err := repos.Social.GetByUserID(page.UserID)
	if err != nil {
		log.Printf("[page] failed to load socials for page %d: %v", page.ID, err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "Could not load page")
	}

	// Views are buffered in redis and flushed in batches; fall back to a
	// direct update when redis is unavailable.
	if err := counter.AddPageView(page.ID); err != nil {
		if err := repos.Page.IncrementViewCount(page.ID); err != nil {
			log.Printf("[page] failed to count view for page %d: %v", page.ID, err)
		}
	}

	avatar := owner.AvatarURL
	if avatar == "" {
		avatar = utils.GetGravatarURL(owner.Email, 200)
	}
	profile := fiber.Map{
		"name":     owner.Name,
		"username": owner.Username,
		"bio":      owner.Bio,
		"avatar":   avatar,
	}

	return c.JSON(fiber.Map{
		"page":    page,
		"profile": profile,
		"blocks":  blocks,
		"links":   links,
		"socials": socials,
	})
}
