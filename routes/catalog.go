package routes

import (
	"github.com/gin-gonic/gin"

	categoryControllers "github.com/shihab103/Supper-Shop-Server/controllers/category"
	productcontroller "github.com/shihab103/Supper-Shop-Server/controllers/product"
	reviewControllers "github.com/shihab103/Supper-Shop-Server/controllers/review"
	"github.com/shihab103/Supper-Shop-Server/store"
)

// SetupCatalogRoutes registers the public browse endpoints.
func SetupCatalogRoutes(r *gin.Engine, st store.Store) {
	r.GET("/get-category", categoryControllers.GetCategories(st))

	r.GET("/all-products", productcontroller.GetAllProducts(st))
	r.GET("/product/:id", productcontroller.GetProductByID(st))
	r.GET("/products-by-category/:categoryId", productcontroller.GetProductsByCategory(st))
	r.GET("/discounted-products", productcontroller.GetDiscountedProducts(st))
	r.GET("/top-selling-products", productcontroller.GetTopSellingProducts(st))

	r.POST("/add-review", reviewControllers.AddReview(st))
	r.GET("/all-reviews", reviewControllers.GetAllReviews(st))
	r.GET("/reviews/:productId", reviewControllers.GetProductReviews(st))
	r.DELETE("/review/:id", reviewControllers.DeleteReview(st))
}
