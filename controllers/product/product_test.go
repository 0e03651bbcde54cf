package productcontroller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shihab103/Supper-Shop-Server/models"
	"github.com/shihab103/Supper-Shop-Server/store"
)

func newProductTestEngine(st store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/add-product", AddProduct(st))
	r.GET("/all-products", GetAllProducts(st))
	r.GET("/product/:id", GetProductByID(st))
	r.PATCH("/update-discount/:id", UpdateDiscount(st))
	r.GET("/discounted-products", GetDiscountedProducts(st))
	r.GET("/top-selling-products", GetTopSellingProducts(st))
	r.DELETE("/product/:id", DeleteProduct(st))
	return r
}

func doRaw(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateDiscountRecomputesFinalPrice(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	p := &models.Product{Name: "Rice", Price: 200}
	require.NoError(t, st.Products.Insert(ctx, p))
	r := newProductTestEngine(st)

	// No clamping: negative and >100 discounts go through as-is.
	for _, d := range []float64{0, 10, 33.5, 100, 150, -20} {
		body, _ := json.Marshal(gin.H{"discount": d})
		w := doRaw(r, http.MethodPatch, "/update-discount/"+p.ID.Hex(), string(body))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		got, err := st.Products.FindByID(ctx, p.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, d, got.Discount)
		assert.InDelta(t, 200-(d/100)*200, got.FinalPrice, 1e-9)
	}
}

func TestUpdateDiscountRejectsNonNumeric(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	p := &models.Product{Name: "Rice", Price: 200}
	require.NoError(t, st.Products.Insert(ctx, p))
	r := newProductTestEngine(st)

	for _, body := range []string{`{"discount":"ten"}`, `{}`, `{"discount":null}`} {
		w := doRaw(r, http.MethodPatch, "/update-discount/"+p.ID.Hex(), body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestUpdateDiscountUnknownProduct(t *testing.T) {
	st := store.NewMemoryStore()
	r := newProductTestEngine(st)

	w := doRaw(r, http.MethodPatch, "/update-discount/ffffffffffffffffffffffff", `{"discount":10}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDiscountedProductsFilter(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	require.NoError(t, st.Products.Insert(ctx, &models.Product{Name: "Plain", Price: 10}))
	require.NoError(t, st.Products.Insert(ctx, &models.Product{Name: "OnSale", Price: 10, Discount: 15, FinalPrice: 8.5}))
	r := newProductTestEngine(st)

	w := doRaw(r, http.MethodGet, "/discounted-products", "")
	require.Equal(t, http.StatusOK, w.Code)
	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "OnSale", products[0].Name)
}

func TestDeleteProductCascades(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	p := &models.Product{Name: "Rice", Price: 10, Stock: 5}
	require.NoError(t, st.Products.Insert(ctx, p))
	id := p.ID.Hex()

	require.NoError(t, st.Users.Insert(ctx, &models.User{Email: "a@x.com", Wishlist: []string{id, "other"}}))
	require.NoError(t, st.Carts.Insert(ctx, &models.CartItem{UserEmail: "a@x.com", ProductID: id, Price: 10, Quantity: 1}))
	require.NoError(t, st.Carts.Insert(ctx, &models.CartItem{UserEmail: "b@x.com", ProductID: "other", Price: 5, Quantity: 2}))
	require.NoError(t, st.Orders.Insert(ctx, &models.Order{
		UserEmail:   "a@x.com",
		Items:       []models.OrderItem{{ProductID: id, ProductName: "Rice", Price: 10, Quantity: 1}},
		TotalAmount: 10,
		Status:      models.OrderStatusPending,
	}))

	r := newProductTestEngine(st)
	w := doRaw(r, http.MethodDelete, "/product/"+id, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Gone from the catalog
	_, err := st.Products.FindByID(ctx, id)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Gone from every wishlist
	u, err := st.Users.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"other"}, u.Wishlist)

	// Gone from every cart line; unrelated lines survive
	items, err := st.Carts.ByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Empty(t, items)
	others, err := st.Carts.ByEmail(ctx, "b@x.com")
	require.NoError(t, err)
	assert.Len(t, others, 1)

	// Order snapshots are untouched
	orders, err := st.Orders.ByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, id, orders[0].Items[0].ProductID)
	assert.Equal(t, "Rice", orders[0].Items[0].ProductName)
}

func TestDeleteUnknownProduct(t *testing.T) {
	st := store.NewMemoryStore()
	r := newProductTestEngine(st)

	w := doRaw(r, http.MethodDelete, "/product/ffffffffffffffffffffffff", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTopSellingProducts(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	p1 := &models.Product{Name: "Rice", Price: 10}
	p2 := &models.Product{Name: "Oil", Price: 25}
	require.NoError(t, st.Products.Insert(ctx, p1))
	require.NoError(t, st.Products.Insert(ctx, p2))

	require.NoError(t, st.Orders.Insert(ctx, &models.Order{
		UserEmail: "a@x.com",
		Items: []models.OrderItem{
			{ProductID: p1.ID.Hex(), Quantity: 2},
			{ProductID: p2.ID.Hex(), Quantity: 5},
		},
	}))
	require.NoError(t, st.Orders.Insert(ctx, &models.Order{
		UserEmail: "b@x.com",
		Items:     []models.OrderItem{{ProductID: p1.ID.Hex(), Quantity: 1}},
	}))

	r := newProductTestEngine(st)
	w := doRaw(r, http.MethodGet, "/top-selling-products", "")
	require.Equal(t, http.StatusOK, w.Code)

	var out []struct {
		Product   models.Product `json:"product"`
		TotalSold int64          `json:"totalSold"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 2)
	assert.Equal(t, "Oil", out[0].Product.Name)
	assert.Equal(t, int64(5), out[0].TotalSold)
	assert.Equal(t, "Rice", out[1].Product.Name)
	assert.Equal(t, int64(3), out[1].TotalSold)
}
