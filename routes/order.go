package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/shihab103/Supper-Shop-Server/controllers/order"
	"github.com/shihab103/Supper-Shop-Server/middleware"
)

// SetupOrderRoutes registers checkout and order endpoints. Checkout is
// gated by the identity provider.
func SetupOrderRoutes(r *gin.Engine, deps Deps) {
	st := deps.Store

	r.POST("/checkout", middleware.RequireAuth(deps.Verifier), orderControllers.CheckoutHandler(st, deps.Logger))
	r.GET("/my-orders/:email", orderControllers.GetMyOrders(st))
	r.PATCH("/cancel-order/:id", orderControllers.CancelOrder(st))
}
