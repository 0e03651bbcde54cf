package store

import (
	"context"
	"errors"

	"github.com/shihab103/Supper-Shop-Server/models"
)

// ErrNotFound is returned when a referenced document does not exist.
// Handlers map it to 404.
var ErrNotFound = errors.New("document not found")

// Store bundles one accessor per collection. Handlers receive it injected
// so tests can swap in the in-memory implementation.
type Store struct {
	Users      UserStore
	Categories CategoryStore
	Products   ProductStore
	Carts      CartStore
	Orders     OrderStore
	Reviews    ReviewStore
}

type UserStore interface {
	Insert(ctx context.Context, u *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateByEmail(ctx context.Context, email string, upd models.UserUpdate) error
	// AddWishlistItem has set semantics: adding an id twice keeps one copy.
	AddWishlistItem(ctx context.Context, email, productID string) error
	// RemoveWishlistItem is remove-if-exists; absent ids are not an error.
	RemoveWishlistItem(ctx context.Context, email, productID string) error
	// RemoveWishlistItemAll pulls the id from every user's wishlist.
	RemoveWishlistItemAll(ctx context.Context, productID string) error
	Count(ctx context.Context) (int64, error)
}

type CategoryStore interface {
	Insert(ctx context.Context, c *models.Category) error
	All(ctx context.Context) ([]models.Category, error)
}

type ProductStore interface {
	Insert(ctx context.Context, p *models.Product) error
	All(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Product, error)
	ByCategory(ctx context.Context, categoryID string) ([]models.Product, error)
	Discounted(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, id string, upd models.ProductUpdate) error
	SetDiscount(ctx context.Context, id string, discount, finalPrice float64) error
	// IncStock adds delta to the stock counter. Negative deltas are not
	// floored; checkout may drive stock below zero.
	IncStock(ctx context.Context, id string, delta int) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountByCategory(ctx context.Context) ([]models.CategoryCount, error)
}

type CartStore interface {
	Insert(ctx context.Context, item *models.CartItem) error
	ByEmail(ctx context.Context, email string) ([]models.CartItem, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByEmail(ctx context.Context, email string) error
	// DeleteByProduct removes every cart line referencing the product,
	// across all users.
	DeleteByProduct(ctx context.Context, productID string) error
}

type OrderStore interface {
	Insert(ctx context.Context, o *models.Order) error
	All(ctx context.Context) ([]models.Order, error)
	ByEmail(ctx context.Context, email string) ([]models.Order, error)
	SetStatus(ctx context.Context, id string, status models.OrderStatus) error
	Count(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (float64, error)
	TopSelling(ctx context.Context, limit int) ([]models.ProductSales, error)
}

type ReviewStore interface {
	Insert(ctx context.Context, r *models.Review) error
	All(ctx context.Context) ([]models.Review, error)
	ByProduct(ctx context.Context, productID string) ([]models.Review, error)
	Delete(ctx context.Context, id string) error
}
