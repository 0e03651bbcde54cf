package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shihab103/Supper-Shop-Server/models"
)

func TestMemoryStockUnderflowAllowed(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	p := &models.Product{Name: "Rice", Price: 10, Stock: 2}
	require.NoError(t, st.Products.Insert(ctx, p))
	require.NoError(t, st.Products.IncStock(ctx, p.ID.Hex(), -5))

	got, err := st.Products.FindByID(ctx, p.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, -3, got.Stock)
}

func TestMemoryCartDeleteByEmail(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	require.NoError(t, st.Carts.Insert(ctx, &models.CartItem{UserEmail: "a@x.com", ProductID: "p1", Quantity: 1}))
	require.NoError(t, st.Carts.Insert(ctx, &models.CartItem{UserEmail: "a@x.com", ProductID: "p2", Quantity: 2}))
	require.NoError(t, st.Carts.Insert(ctx, &models.CartItem{UserEmail: "b@x.com", ProductID: "p1", Quantity: 1}))

	require.NoError(t, st.Carts.DeleteByEmail(ctx, "a@x.com"))

	a, err := st.Carts.ByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Empty(t, a)
	b, err := st.Carts.ByEmail(ctx, "b@x.com")
	require.NoError(t, err)
	assert.Len(t, b, 1)
}

func TestMemoryTopSellingOrdering(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	require.NoError(t, st.Orders.Insert(ctx, &models.Order{
		UserEmail: "a@x.com",
		Items: []models.OrderItem{
			{ProductID: "p1", Quantity: 1},
			{ProductID: "p2", Quantity: 4},
		},
	}))
	require.NoError(t, st.Orders.Insert(ctx, &models.Order{
		UserEmail: "b@x.com",
		Items:     []models.OrderItem{{ProductID: "p3", Quantity: 2}},
	}))

	top, err := st.Orders.TopSelling(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, models.ProductSales{ProductID: "p2", TotalSold: 4}, top[0])
	assert.Equal(t, models.ProductSales{ProductID: "p3", TotalSold: 2}, top[1])
}

func TestMemoryNotFound(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	_, err := st.Users.FindByEmail(ctx, "none@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = st.Products.FindByID(ctx, "ffffffffffffffffffffffff")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, st.Orders.SetStatus(ctx, "ffffffffffffffffffffffff", models.OrderStatusCancelled), ErrNotFound)
	assert.ErrorIs(t, st.Carts.DeleteByID(ctx, "ffffffffffffffffffffffff"), ErrNotFound)
	assert.ErrorIs(t, st.Reviews.Delete(ctx, "ffffffffffffffffffffffff"), ErrNotFound)
}
