package orderControllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shihab103/Supper-Shop-Server/models"
	"github.com/shihab103/Supper-Shop-Server/store"
)

var ErrEmptyCart = errors.New("cart is empty")

type CheckoutRequest struct {
	Email string `json:"email" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Checkout turns the user's current cart into one order.
//
// The order insert is the commit point: stock decrements and the cart
// purge that follow are independent writes with no compensation, so a
// crash in between leaves the order placed and the cart intact. Stock is
// not floor-checked and may go negative.
func Checkout(ctx context.Context, st store.Store, email string, logger *slog.Logger) (*models.Order, error) {
	items, err := st.Carts.ByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	user, err := st.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	var total float64
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductImage: item.ProductImage,
			Price:        item.Price,
			Quantity:     item.Quantity,
		})
	}

	order := models.Order{
		UserID:       user.ID.Hex(),
		UserEmail:    user.Email,
		CustomerName: user.Name,
		Phone:        user.Phone,
		Address:      user.Address,
		Items:        orderItems,
		TotalAmount:  total,
		Status:       models.OrderStatusPending,
		OrderDate:    time.Now(),
	}
	if err := st.Orders.Insert(ctx, &order); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := st.Products.IncStock(ctx, item.ProductID, -item.Quantity); err != nil {
			logger.Warn("stock decrement failed after order insert",
				"orderId", order.ID.Hex(), "productId", item.ProductID, "error", err)
		}
	}
	if err := st.Carts.DeleteByEmail(ctx, email); err != nil {
		logger.Warn("cart purge failed after order insert",
			"orderId", order.ID.Hex(), "email", email, "error", err)
	}

	return &order, nil
}

// POST /checkout
func CheckoutHandler(st store.Store, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}
		order, err := Checkout(c.Request.Context(), st, req.Email, logger)
		if err != nil {
			switch {
			case errors.Is(err, ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			case errors.Is(err, store.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order placed successfully", "order": order})
	}
}

// GET /all-orders
func GetAllOrders(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := st.Orders.All(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		if orders == nil {
			orders = []models.Order{}
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /my-orders/:email
func GetMyOrders(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		orders, err := st.Orders.ByEmail(c.Request.Context(), email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		if orders == nil {
			orders = []models.Order{}
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PATCH /update-order-status/:id
//
// Any non-empty status string is accepted; the admin UI drives the values.
func UpdateOrderStatus(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
			return
		}
		if err := st.Orders.SetStatus(c.Request.Context(), id, models.OrderStatus(req.Status)); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

// PATCH /cancel-order/:id
func CancelOrder(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := st.Orders.SetStatus(c.Request.Context(), id, models.OrderStatusCancelled); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order cancelled"})
	}
}
