package productcontroller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shihab103/Supper-Shop-Server/models"
	"github.com/shihab103/Supper-Shop-Server/store"
)

// POST /add-product
func AddProduct(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := c.ShouldBindJSON(&product); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if product.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product name is required"})
			return
		}
		product.CreatedAt = time.Now()
		if err := st.Products.Insert(c.Request.Context(), &product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GET /all-products
func GetAllProducts(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := st.Products.All(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		if products == nil {
			products = []models.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /product/:id
func GetProductByID(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}
		product, err := st.Products.FindByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GET /products-by-category/:categoryId
func GetProductsByCategory(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID := c.Param("categoryId")
		products, err := st.Products.ByCategory(c.Request.Context(), categoryID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		if products == nil {
			products = []models.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /discounted-products
func GetDiscountedProducts(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := st.Products.Discounted(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch discounted products"})
			return
		}
		if products == nil {
			products = []models.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

// PUT /update-product/:id
func UpdateProduct(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var input models.ProductUpdate
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := st.Products.Update(c.Request.Context(), id, input); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
	}
}

type DiscountInput struct {
	Discount *float64 `json:"discount"`
}

// PATCH /update-discount/:id
//
// finalPrice = price - (discount/100)*price, recomputed from the stored
// price on every change. The discount range is not clamped.
func UpdateDiscount(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input DiscountInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Discount == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Discount must be a number"})
			return
		}

		product, err := st.Products.FindByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		discount := *input.Discount
		finalPrice := product.Price - (discount/100)*product.Price
		if err := st.Products.SetDiscount(c.Request.Context(), id, discount, finalPrice); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update discount"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":    "Discount updated successfully",
			"discount":   discount,
			"finalPrice": finalPrice,
		})
	}
}

// GET /top-selling-products
func GetTopSellingProducts(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		sales, err := st.Orders.TopSelling(ctx, 10)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch top selling products"})
			return
		}

		ids := make([]string, 0, len(sales))
		for _, s := range sales {
			ids = append(ids, s.ProductID)
		}
		products, err := st.Products.FindByIDs(ctx, ids)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve products"})
			return
		}
		byID := make(map[string]models.Product, len(products))
		for _, p := range products {
			byID[p.ID.Hex()] = p
		}

		// Keep the aggregation order; skip ids whose product was deleted.
		type topProduct struct {
			Product   models.Product `json:"product"`
			TotalSold int64          `json:"totalSold"`
		}
		out := []topProduct{}
		for _, s := range sales {
			if p, ok := byID[s.ProductID]; ok {
				out = append(out, topProduct{Product: p, TotalSold: s.TotalSold})
			}
		}
		c.JSON(http.StatusOK, out)
	}
}

// DELETE /product/:id
//
// Deleting a product also drops it from every wishlist and every cart line.
// Order history keeps its denormalized snapshots.
func DeleteProduct(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}
		ctx := c.Request.Context()

		if err := st.Products.Delete(ctx, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			}
			return
		}

		if err := st.Users.RemoveWishlistItemAll(ctx, id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clean wishlists"})
			return
		}
		if err := st.Carts.DeleteByProduct(ctx, id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clean carts"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
