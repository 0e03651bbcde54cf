package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shihab103/Supper-Shop-Server/models"
	"github.com/shihab103/Supper-Shop-Server/store"
)

type AddToCartInput struct {
	UserEmail    string  `json:"userEmail" binding:"required"`
	ProductID    string  `json:"productId" binding:"required"`
	ProductName  string  `json:"productName"`
	ProductImage string  `json:"productImage"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity" binding:"required,min=1"`
}

// POST /add-to-cart
//
// The line item snapshots the product fields the client sends; later product
// edits do not touch existing cart lines.
func AddToCart(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		item := models.CartItem{
			UserEmail:    input.UserEmail,
			ProductID:    input.ProductID,
			ProductName:  input.ProductName,
			ProductImage: input.ProductImage,
			Price:        input.Price,
			Quantity:     input.Quantity,
			Date:         time.Now(),
		}
		if err := st.Carts.Insert(c.Request.Context(), &item); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// GET /cart?email=...  and  GET /cart/:email
func GetCart(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		if email == "" {
			email = c.Query("email")
		}
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}
		items, err := st.Carts.ByEmail(c.Request.Context(), email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if items == nil {
			items = []models.CartItem{}
		}
		c.JSON(http.StatusOK, items)
	}
}

// DELETE /cart/:itemId
func DeleteCartItem(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID := c.Param("itemId")
		if err := st.Carts.DeleteByID(c.Request.Context(), itemID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}
