package categoryControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shihab103/Supper-Shop-Server/models"
	"github.com/shihab103/Supper-Shop-Server/store"
)

// POST /add-category
func AddCategory(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := c.ShouldBindJSON(&category); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if category.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
			return
		}
		if err := st.Categories.Insert(c.Request.Context(), &category); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add category"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// GET /get-category
func GetCategories(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := st.Categories.All(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		if categories == nil {
			categories = []models.Category{}
		}
		c.JSON(http.StatusOK, categories)
	}
}
