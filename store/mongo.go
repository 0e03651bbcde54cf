package store

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shihab103/Supper-Shop-Server/models"
)

// Collection names match the original SupperShop database layout.
const (
	usersCollection    = "users"
	categoryCollection = "category"
	productsCollection = "products"
	reviewCollection   = "review"
	cartCollection     = "cart"
	ordersCollection   = "orders"
)

// NewMongoStore wires one accessor per collection over a shared database
// handle. The handle lives for the process lifetime; pooling is the
// driver's business.
func NewMongoStore(db *mongo.Database) Store {
	return Store{
		Users:      &mongoUsers{col: db.Collection(usersCollection)},
		Categories: &mongoCategories{col: db.Collection(categoryCollection)},
		Products:   &mongoProducts{col: db.Collection(productsCollection)},
		Carts:      &mongoCarts{col: db.Collection(cartCollection)},
		Orders:     &mongoOrders{col: db.Collection(ordersCollection)},
		Reviews:    &mongoReviews{col: db.Collection(reviewCollection)},
	}
}

// objectID parses a client-supplied hex id. A malformed id cannot match any
// document, so it reports ErrNotFound rather than a separate error kind.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return oid, nil
}

// ---------------- users ----------------

type mongoUsers struct {
	col *mongo.Collection
}

func (s *mongoUsers) Insert(ctx context.Context, u *models.User) error {
	res, err := s.col.InsertOne(ctx, u)
	if err != nil {
		return errors.Wrap(err, "insert user")
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return nil
}

func (s *mongoUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find user")
	}
	return &u, nil
}

func (s *mongoUsers) UpdateByEmail(ctx context.Context, email string, upd models.UserUpdate) error {
	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}
	if upd.Role != nil {
		set["role"] = *upd.Role
	}
	if upd.Address != nil {
		set["address"] = *upd.Address
	}
	if len(set) == 0 {
		return nil
	}
	res, err := s.col.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": set})
	if err != nil {
		return errors.Wrap(err, "update user")
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoUsers) AddWishlistItem(ctx context.Context, email, productID string) error {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$addToSet": bson.M{"wishlist": productID}})
	if err != nil {
		return errors.Wrap(err, "wishlist add")
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoUsers) RemoveWishlistItem(ctx context.Context, email, productID string) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$pull": bson.M{"wishlist": productID}})
	return errors.Wrap(err, "wishlist remove")
}

func (s *mongoUsers) RemoveWishlistItemAll(ctx context.Context, productID string) error {
	_, err := s.col.UpdateMany(ctx,
		bson.M{},
		bson.M{"$pull": bson.M{"wishlist": productID}})
	return errors.Wrap(err, "wishlist cascade")
}

func (s *mongoUsers) Count(ctx context.Context) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{})
}

// ---------------- category ----------------

type mongoCategories struct {
	col *mongo.Collection
}

func (s *mongoCategories) Insert(ctx context.Context, c *models.Category) error {
	res, err := s.col.InsertOne(ctx, c)
	if err != nil {
		return errors.Wrap(err, "insert category")
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = oid
	}
	return nil
}

func (s *mongoCategories) All(ctx context.Context) ([]models.Category, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "find categories")
	}
	var out []models.Category
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(err, "decode categories")
	}
	return out, nil
}

// ---------------- products ----------------

type mongoProducts struct {
	col *mongo.Collection
}

func (s *mongoProducts) Insert(ctx context.Context, p *models.Product) error {
	res, err := s.col.InsertOne(ctx, p)
	if err != nil {
		return errors.Wrap(err, "insert product")
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return nil
}

func (s *mongoProducts) All(ctx context.Context) ([]models.Product, error) {
	return s.find(ctx, bson.M{})
}

func (s *mongoProducts) FindByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var p models.Product
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find product")
	}
	return &p, nil
}

func (s *mongoProducts) FindByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return []models.Product{}, nil
	}
	return s.find(ctx, bson.M{"_id": bson.M{"$in": oids}})
}

func (s *mongoProducts) ByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	return s.find(ctx, bson.M{"categoryId": categoryID})
}

func (s *mongoProducts) Discounted(ctx context.Context) ([]models.Product, error) {
	return s.find(ctx, bson.M{"discount": bson.M{"$gt": 0}})
}

func (s *mongoProducts) find(ctx context.Context, filter bson.M) ([]models.Product, error) {
	cur, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "find products")
	}
	var out []models.Product
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(err, "decode products")
	}
	return out, nil
}

func (s *mongoProducts) Update(ctx context.Context, id string, upd models.ProductUpdate) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Image != nil {
		set["image"] = *upd.Image
	}
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	if upd.Stock != nil {
		set["stock"] = *upd.Stock
	}
	if upd.CategoryID != nil {
		set["categoryId"] = *upd.CategoryID
	}
	if upd.ExpiryDate != nil {
		set["expiryDate"] = *upd.ExpiryDate
	}
	if len(set) == 0 {
		return nil
	}
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return errors.Wrap(err, "update product")
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoProducts) SetDiscount(ctx context.Context, id string, discount, finalPrice float64) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"discount": discount, "finalPrice": finalPrice}})
	if err != nil {
		return errors.Wrap(err, "set discount")
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoProducts) IncStock(ctx context.Context, id string, delta int) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$inc": bson.M{"stock": delta}})
	if err != nil {
		return errors.Wrap(err, "inc stock")
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoProducts) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errors.Wrap(err, "delete product")
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoProducts) Count(ctx context.Context) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{})
}

func (s *mongoProducts) CountByCategory(ctx context.Context) ([]models.CategoryCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$categoryId",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
	}
	cur, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "category counts")
	}
	var out []models.CategoryCount
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(err, "decode category counts")
	}
	return out, nil
}

// ---------------- cart ----------------

type mongoCarts struct {
	col *mongo.Collection
}

func (s *mongoCarts) Insert(ctx context.Context, item *models.CartItem) error {
	res, err := s.col.InsertOne(ctx, item)
	if err != nil {
		return errors.Wrap(err, "insert cart item")
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid
	}
	return nil
}

func (s *mongoCarts) ByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	cur, err := s.col.Find(ctx, bson.M{"userEmail": email})
	if err != nil {
		return nil, errors.Wrap(err, "find cart")
	}
	var out []models.CartItem
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(err, "decode cart")
	}
	return out, nil
}

func (s *mongoCarts) DeleteByID(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errors.Wrap(err, "delete cart item")
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoCarts) DeleteByEmail(ctx context.Context, email string) error {
	_, err := s.col.DeleteMany(ctx, bson.M{"userEmail": email})
	return errors.Wrap(err, "clear cart")
}

func (s *mongoCarts) DeleteByProduct(ctx context.Context, productID string) error {
	_, err := s.col.DeleteMany(ctx, bson.M{"productId": productID})
	return errors.Wrap(err, "cart cascade")
}

// ---------------- orders ----------------

type mongoOrders struct {
	col *mongo.Collection
}

func (s *mongoOrders) Insert(ctx context.Context, o *models.Order) error {
	res, err := s.col.InsertOne(ctx, o)
	if err != nil {
		return errors.Wrap(err, "insert order")
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		o.ID = oid
	}
	return nil
}

func (s *mongoOrders) All(ctx context.Context) ([]models.Order, error) {
	return s.find(ctx, bson.M{})
}

func (s *mongoOrders) ByEmail(ctx context.Context, email string) ([]models.Order, error) {
	return s.find(ctx, bson.M{"userEmail": email})
}

func (s *mongoOrders) find(ctx context.Context, filter bson.M) ([]models.Order, error) {
	cur, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "find orders")
	}
	var out []models.Order
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(err, "decode orders")
	}
	return out, nil
}

func (s *mongoOrders) SetStatus(ctx context.Context, id string, status models.OrderStatus) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return errors.Wrap(err, "set order status")
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoOrders) Count(ctx context.Context) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{})
}

func (s *mongoOrders) TotalRevenue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$totalAmount"},
		}}},
	}
	cur, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, errors.Wrap(err, "revenue")
	}
	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, errors.Wrap(err, "decode revenue")
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

func (s *mongoOrders) TopSelling(ctx context.Context, limit int) ([]models.ProductSales, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$items"}},
		{{Key: "$group", Value: bson.M{
			"_id":       "$items.productId",
			"totalSold": bson.M{"$sum": "$items.quantity"},
		}}},
		{{Key: "$sort", Value: bson.M{"totalSold": -1}}},
		{{Key: "$limit", Value: limit}},
	}
	cur, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "top selling")
	}
	var out []models.ProductSales
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(err, "decode top selling")
	}
	return out, nil
}

// ---------------- review ----------------

type mongoReviews struct {
	col *mongo.Collection
}

func (s *mongoReviews) Insert(ctx context.Context, r *models.Review) error {
	res, err := s.col.InsertOne(ctx, r)
	if err != nil {
		return errors.Wrap(err, "insert review")
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		r.ID = oid
	}
	return nil
}

func (s *mongoReviews) All(ctx context.Context) ([]models.Review, error) {
	return s.find(ctx, bson.M{})
}

func (s *mongoReviews) ByProduct(ctx context.Context, productID string) ([]models.Review, error) {
	return s.find(ctx, bson.M{"productId": productID})
}

func (s *mongoReviews) find(ctx context.Context, filter bson.M) ([]models.Review, error) {
	cur, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "find reviews")
	}
	var out []models.Review
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(err, "decode reviews")
	}
	return out, nil
}

func (s *mongoReviews) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errors.Wrap(err, "delete review")
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
