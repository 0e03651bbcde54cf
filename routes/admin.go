package routes

import (
	"github.com/gin-gonic/gin"

	adminControllers "github.com/shihab103/Supper-Shop-Server/controllers/admin"
	categoryControllers "github.com/shihab103/Supper-Shop-Server/controllers/category"
	orderControllers "github.com/shihab103/Supper-Shop-Server/controllers/order"
	productcontroller "github.com/shihab103/Supper-Shop-Server/controllers/product"
	"github.com/shihab103/Supper-Shop-Server/middleware"
	"github.com/shihab103/Supper-Shop-Server/store"
)

// SetupAdminRoutes registers the mutation and reporting endpoints behind
// the admin token check.
func SetupAdminRoutes(r *gin.Engine, st store.Store) {
	admin := r.Group("/")
	admin.Use(middleware.ValidateAdminToken)
	{
		admin.POST("/add-category", categoryControllers.AddCategory(st))

		admin.POST("/add-product", productcontroller.AddProduct(st))
		admin.PUT("/update-product/:id", productcontroller.UpdateProduct(st))
		admin.PATCH("/update-discount/:id", productcontroller.UpdateDiscount(st))
		admin.DELETE("/product/:id", productcontroller.DeleteProduct(st))

		admin.GET("/all-orders", orderControllers.GetAllOrders(st))
		admin.PATCH("/update-order-status/:id", orderControllers.UpdateOrderStatus(st))

		admin.GET("/admin-dashboard-stats", adminControllers.DashboardStats(st))
	}
}
