package router

import (
	"github.com/shivajik/profilelinks/app/controllers"
	"github.com/shivajik/profilelinks/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())

	// Public endpoints
	api.Get("/pricing/plans", controllers.HandleListPlans)
	api.Post("/auth/register", controllers.HandleRegister)
	api.Get("/auth/activate/:token", controllers.HandleActivate)
	api.Post("/auth/login", controllers.HandleLogin)
	api.Post("/auth/logout", controllers.HandleLogout)

	// Everything below requires a logged-in tenant
	auth := api.Group("", middleware.RequireAPISessionAuth)

	auth.Get("/auth/plan-limits", controllers.HandleGetPlanLimits)
	auth.Put("/account/password", controllers.HandleChangePassword)

	auth.Get("/payments/subscription", controllers.HandleGetSubscription)
	auth.Post("/payments/create-order", controllers.HandleCreateOrder)
	auth.Post("/payments/verify", controllers.HandleVerifyPayment)
	auth.Post("/promo-codes/validate", controllers.HandleValidatePromoCode)

	auth.Get("/links", controllers.HandleListLinks)
	auth.Post("/links", controllers.HandleCreateLink)
	auth.Post("/pages", controllers.HandleCreatePage)
	auth.Post("/pages/:id/blocks", controllers.HandleCreateBlock)
	auth.Post("/socials", controllers.HandleCreateSocial)
	auth.Get("/team/members", controllers.HandleListTeamMembers)
	auth.Post("/team/members", controllers.HandleInviteTeamMember)

	auth.Get("/pages/:slug/qrcode", controllers.HandleGetPageQRCode)
	auth.Get("/analytics/summary", controllers.HandleGetAnalyticsSummary)

	// Catalog management
	admin := api.Group("/admin", middleware.RequireAPISessionAuth, middleware.RequireAdmin)
	admin.Post("/plans", controllers.HandleAdminCreatePlan)
	admin.Delete("/plans/:id", controllers.HandleAdminDeactivatePlan)
	admin.Post("/promo-codes", controllers.HandleAdminCreatePromoCode)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
