package router

import (
	"github.com/shivajik/profilelinks/app/controllers"
	"github.com/shivajik/profilelinks/internal/pkg/middleware"
	"github.com/shivajik/profilelinks/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	h.registerPublicRoutes(app)
}

// registerPublicRoutes installs the visitor-facing routes: published profile
// pages and short link redirects. No session required.
func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	app.Get("/p/:slug", controllers.HandleGetPublicPage)
	app.Get("/l/:code", controllers.HandleLinkRedirect)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
