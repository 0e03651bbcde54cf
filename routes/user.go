package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/shihab103/Supper-Shop-Server/controllers/cart"
	userControllers "github.com/shihab103/Supper-Shop-Server/controllers/user"
	"github.com/shihab103/Supper-Shop-Server/middleware"
)

// SetupUserRoutes registers account, wishlist and cart endpoints. The
// profile lookup is the one user endpoint gated by the identity provider.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	st := deps.Store

	r.POST("/add-user", userControllers.AddUser(st))
	r.PATCH("/update-user/:email", userControllers.UpdateUser(st))
	r.GET("/user/:email", middleware.RequireAuth(deps.Verifier), userControllers.GetUserByEmail(st))

	r.POST("/wishlist/add", userControllers.AddToWishlist(st))
	r.POST("/wishlist/remove", userControllers.RemoveFromWishlist(st))
	r.GET("/wishlist/:email", userControllers.GetWishlist(st))

	r.POST("/add-to-cart", cartControllers.AddToCart(st))
	r.GET("/cart", cartControllers.GetCart(st))
	r.GET("/cart/:email", cartControllers.GetCart(st))
	r.DELETE("/cart/:itemId", cartControllers.DeleteCartItem(st))
}
