package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shihab103/Supper-Shop-Server/models"
)

// NewMemoryStore returns a Store backed by in-process maps. It exists so
// handler and checkout tests run without a Mongo instance; semantics mirror
// the Mongo implementation, including set-style wishlists and unfloored
// stock decrements.
func NewMemoryStore() Store {
	m := &memory{
		users:    map[string]*models.User{},
		products: map[string]*models.Product{},
	}
	return Store{
		Users:      (*memoryUsers)(m),
		Categories: (*memoryCategories)(m),
		Products:   (*memoryProducts)(m),
		Carts:      (*memoryCarts)(m),
		Orders:     (*memoryOrders)(m),
		Reviews:    (*memoryReviews)(m),
	}
}

type memory struct {
	mu         sync.Mutex
	users      map[string]*models.User // keyed by email
	categories []models.Category
	products   map[string]*models.Product // keyed by hex id
	cart       []models.CartItem
	orders     []models.Order
	reviews    []models.Review
}

// ---------------- users ----------------

type memoryUsers memory

func (m *memoryUsers) Insert(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	cp := *u
	m.users[u.Email] = &cp
	return nil
}

func (m *memoryUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	cp.Wishlist = append([]string(nil), u.Wishlist...)
	return &cp, nil
}

func (m *memoryUsers) UpdateByEmail(_ context.Context, email string, upd models.UserUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return ErrNotFound
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Phone != nil {
		u.Phone = *upd.Phone
	}
	if upd.Role != nil {
		u.Role = *upd.Role
	}
	if upd.Address != nil {
		u.Address = *upd.Address
	}
	return nil
}

func (m *memoryUsers) AddWishlistItem(_ context.Context, email, productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return ErrNotFound
	}
	for _, id := range u.Wishlist {
		if id == productID {
			return nil
		}
	}
	u.Wishlist = append(u.Wishlist, productID)
	return nil
}

func (m *memoryUsers) RemoveWishlistItem(_ context.Context, email, productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[email]; ok {
		u.Wishlist = without(u.Wishlist, productID)
	}
	return nil
}

func (m *memoryUsers) RemoveWishlistItemAll(_ context.Context, productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		u.Wishlist = without(u.Wishlist, productID)
	}
	return nil
}

func (m *memoryUsers) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.users)), nil
}

func without(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// ---------------- category ----------------

type memoryCategories memory

func (m *memoryCategories) Insert(_ context.Context, c *models.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	m.categories = append(m.categories, *c)
	return nil
}

func (m *memoryCategories) All(_ context.Context) ([]models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Category(nil), m.categories...), nil
}

// ---------------- products ----------------

type memoryProducts memory

func (m *memoryProducts) Insert(_ context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	cp := *p
	m.products[p.ID.Hex()] = &cp
	return nil
}

func (m *memoryProducts) All(_ context.Context) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, *p)
	}
	return out, nil
}

func (m *memoryProducts) FindByID(_ context.Context, id string) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memoryProducts) FindByIDs(_ context.Context, ids []string) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Product{}
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memoryProducts) ByCategory(_ context.Context, categoryID string) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Product
	for _, p := range m.products {
		if p.CategoryID == categoryID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memoryProducts) Discounted(_ context.Context) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Product
	for _, p := range m.products {
		if p.Discount > 0 {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memoryProducts) Update(_ context.Context, id string, upd models.ProductUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return ErrNotFound
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Image != nil {
		p.Image = *upd.Image
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.Stock != nil {
		p.Stock = *upd.Stock
	}
	if upd.CategoryID != nil {
		p.CategoryID = *upd.CategoryID
	}
	if upd.ExpiryDate != nil {
		p.ExpiryDate = upd.ExpiryDate
	}
	return nil
}

func (m *memoryProducts) SetDiscount(_ context.Context, id string, discount, finalPrice float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return ErrNotFound
	}
	p.Discount = discount
	p.FinalPrice = finalPrice
	return nil
}

func (m *memoryProducts) IncStock(_ context.Context, id string, delta int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return ErrNotFound
	}
	p.Stock += delta
	return nil
}

func (m *memoryProducts) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return ErrNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *memoryProducts) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.products)), nil
}

func (m *memoryProducts) CountByCategory(_ context.Context) ([]models.CategoryCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	byCat := map[string]int64{}
	for _, p := range m.products {
		byCat[p.CategoryID]++
	}
	out := make([]models.CategoryCount, 0, len(byCat))
	for id, n := range byCat {
		out = append(out, models.CategoryCount{CategoryID: id, Count: n})
	}
	return out, nil
}

// ---------------- cart ----------------

type memoryCarts memory

func (m *memoryCarts) Insert(_ context.Context, item *models.CartItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	m.cart = append(m.cart, *item)
	return nil
}

func (m *memoryCarts) ByEmail(_ context.Context, email string) ([]models.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.CartItem{}
	for _, it := range m.cart {
		if it.UserEmail == email {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *memoryCarts) DeleteByID(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, it := range m.cart {
		if it.ID.Hex() == id {
			m.cart = append(m.cart[:i], m.cart[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *memoryCarts) DeleteByEmail(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.cart[:0]
	for _, it := range m.cart {
		if it.UserEmail != email {
			kept = append(kept, it)
		}
	}
	m.cart = kept
	return nil
}

func (m *memoryCarts) DeleteByProduct(_ context.Context, productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.cart[:0]
	for _, it := range m.cart {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	m.cart = kept
	return nil
}

// ---------------- orders ----------------

type memoryOrders memory

func (m *memoryOrders) Insert(_ context.Context, o *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	cp := *o
	cp.Items = append([]models.OrderItem(nil), o.Items...)
	m.orders = append(m.orders, cp)
	return nil
}

func (m *memoryOrders) All(_ context.Context) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Order(nil), m.orders...), nil
}

func (m *memoryOrders) ByEmail(_ context.Context, email string) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Order{}
	for _, o := range m.orders {
		if o.UserEmail == email {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memoryOrders) SetStatus(_ context.Context, id string, status models.OrderStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].ID.Hex() == id {
			m.orders[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

func (m *memoryOrders) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.orders)), nil
}

func (m *memoryOrders) TotalRevenue(_ context.Context) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var total float64
	for _, o := range m.orders {
		total += o.TotalAmount
	}
	return total, nil
}

func (m *memoryOrders) TopSelling(_ context.Context, limit int) ([]models.ProductSales, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sold := map[string]int64{}
	for _, o := range m.orders {
		for _, it := range o.Items {
			sold[it.ProductID] += int64(it.Quantity)
		}
	}
	out := make([]models.ProductSales, 0, len(sold))
	for id, n := range sold {
		out = append(out, models.ProductSales{ProductID: id, TotalSold: n})
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].TotalSold > out[i].TotalSold {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ---------------- review ----------------

type memoryReviews memory

func (m *memoryReviews) Insert(_ context.Context, r *models.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	m.reviews = append(m.reviews, *r)
	return nil
}

func (m *memoryReviews) All(_ context.Context) ([]models.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Review(nil), m.reviews...), nil
}

func (m *memoryReviews) ByProduct(_ context.Context, productID string) ([]models.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Review{}
	for _, r := range m.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memoryReviews) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.reviews {
		if r.ID.Hex() == id {
			m.reviews = append(m.reviews[:i], m.reviews[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
