package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shihab103/Supper-Shop-Server/store"
)

// GET /admin-dashboard-stats
func DashboardStats(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		users, err := st.Users.Count(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count users"})
			return
		}
		products, err := st.Products.Count(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
			return
		}
		orders, err := st.Orders.Count(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count orders"})
			return
		}
		revenue, err := st.Orders.TotalRevenue(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute revenue"})
			return
		}
		byCategory, err := st.Products.CountByCategory(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products by category"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"totalUsers":         users,
			"totalProducts":      products,
			"totalOrders":        orders,
			"totalRevenue":       revenue,
			"productsByCategory": byCategory,
		})
	}
}
