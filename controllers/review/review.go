package reviewControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shihab103/Supper-Shop-Server/models"
	"github.com/shihab103/Supper-Shop-Server/store"
)

// POST /add-review
func AddReview(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var review models.Review
		if err := c.ShouldBindJSON(&review); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if review.ProductID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId is required"})
			return
		}
		review.Date = time.Now()
		if err := st.Reviews.Insert(c.Request.Context(), &review); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add review"})
			return
		}
		c.JSON(http.StatusOK, review)
	}
}

// GET /all-reviews
func GetAllReviews(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := st.Reviews.All(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		if reviews == nil {
			reviews = []models.Review{}
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// GET /reviews/:productId
func GetProductReviews(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("productId")
		reviews, err := st.Reviews.ByProduct(c.Request.Context(), productID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		if reviews == nil {
			reviews = []models.Review{}
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// DELETE /review/:id
func DeleteReview(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := st.Reviews.Delete(c.Request.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
	}
}
