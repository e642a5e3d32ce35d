package controllers

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/shivajik/profilelinks/app/repository"
	"github.com/shivajik/profilelinks/internal/pkg/entitlements"
	"github.com/shivajik/profilelinks/internal/pkg/env"
	"github.com/shivajik/profilelinks/internal/pkg/usercontext"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

const qrCodeSize = 256

// HandleGetPageQRCode renders a PNG QR code pointing at the tenant's public
// page. Gated on the plan's QR code feature flag.
func HandleGetPageQRCode(c *fiber.Ctx) error {
	ok, resp := requireEntitlement(c, entitlements.ActionUseQRCode)
	if !ok {
		return resp
	}
	userID := usercontext.GetUserID(c)

	slug := c.Params("slug")
	page, err := repository.GetGlobalRepositories().Page.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "Page not found")
		}
		log.Printf("[qrcode] page lookup failed for %s: %v", slug, err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "Could not generate QR code")
	}
	if page.UserID != userID {
		return jsonError(c, fiber.StatusNotFound, "not_found", "Page not found")
	}

	publicURL := fmt.Sprintf("%s/p/%s", env.GetEnv("PUBLIC_DOMAIN", "http://localhost:8080"), page.Slug)
	png, err := qrcode.Encode(publicURL, qrcode.Medium, qrCodeSize)
	if err != nil {
		log.Printf("[qrcode] encode failed for page %d: %v", page.ID, err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "Could not generate QR code")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
