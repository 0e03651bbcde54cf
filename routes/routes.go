package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	aiControllers "github.com/shihab103/Supper-Shop-Server/controllers/ai"
	"github.com/shihab103/Supper-Shop-Server/middleware"
	"github.com/shihab103/Supper-Shop-Server/store"
)

// Deps carries everything the route groups need; nothing here is a global.
type Deps struct {
	Store     store.Store
	Verifier  middleware.TokenVerifier
	Assistant aiControllers.Assistant
	Logger    *slog.Logger
}

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Public catalog and review endpoints
	SetupCatalogRoutes(r, deps.Store)

	// Account, wishlist and cart endpoints
	SetupUserRoutes(r, deps)

	// Checkout and order endpoints
	SetupOrderRoutes(r, deps)

	// Admin endpoints (admin-token protected)
	SetupAdminRoutes(r, deps.Store)

	// AI chat assistant
	SetupAIRoutes(r, deps.Assistant)
}
