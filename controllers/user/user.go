package userControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shihab103/Supper-Shop-Server/models"
	"github.com/shihab103/Supper-Shop-Server/store"
)

// POST /add-user
//
// Registration is keyed by email: a second call with a known email answers
// with a message instead of inserting a duplicate document.
func AddUser(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if user.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
			return
		}
		ctx := c.Request.Context()

		if _, err := st.Users.FindByEmail(ctx, user.Email); err == nil {
			c.JSON(http.StatusOK, gin.H{"message": "User already exists"})
			return
		} else if !errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
			return
		}

		user.CreatedAt = time.Now()
		if err := st.Users.Insert(ctx, &user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// GET /user/:email
func GetUserByEmail(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		user, err := st.Users.FindByEmail(c.Request.Context(), email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			}
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// PATCH /update-user/:email
func UpdateUser(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		var input models.UserUpdate
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := st.Users.UpdateByEmail(c.Request.Context(), email, input); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
	}
}

type WishlistInput struct {
	Email     string `json:"email" binding:"required"`
	ProductID string `json:"productId" binding:"required"`
}

// POST /wishlist/add
func AddToWishlist(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input WishlistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		err := st.Users.AddWishlistItem(c.Request.Context(), input.Email, input.ProductID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Added to wishlist"})
	}
}

// POST /wishlist/remove
//
// Remove-if-exists: an absent id still reports success.
func RemoveFromWishlist(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input WishlistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := st.Users.RemoveWishlistItem(c.Request.Context(), input.Email, input.ProductID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Removed from wishlist"})
	}
}

// GET /wishlist/:email
//
// Resolves wishlist ids to product documents. An unknown user or an empty
// wishlist both answer with an empty list.
func GetWishlist(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		ctx := c.Request.Context()

		user, err := st.Users.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusOK, []models.Product{})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			}
			return
		}
		if len(user.Wishlist) == 0 {
			c.JSON(http.StatusOK, []models.Product{})
			return
		}

		products, err := st.Products.FindByIDs(ctx, user.Wishlist)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
