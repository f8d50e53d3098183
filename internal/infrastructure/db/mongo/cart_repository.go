package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/quickbasket/commerce-api/internal/core/domain"
)

const cartCollection = "cart_items"

type MongoCartRepository struct {
	coll *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *MongoCartRepository {
	return &MongoCartRepository{coll: db.Collection(cartCollection)}
}

type mongoCartItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	ProductID string             `bson:"product_id"`
	Quantity  int                `bson:"quantity"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
}

func (r *MongoCartRepository) Create(ctx context.Context, item *domain.CartItem) error {
	doc := mongoCartItem{
		UserID:    item.UserID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt.Unix(),
		UpdatedAt: item.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert cart item: %w", err)
	}
	item.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (r *MongoCartRepository) Save(ctx context.Context, item *domain.CartItem) error {
	filter := bson.M{"user_id": item.UserID, "product_id": item.ProductID}
	update := bson.M{"$set": bson.M{
		"quantity":   item.Quantity,
		"updated_at": item.UpdatedAt.Unix(),
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("update cart item: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}

func (r *MongoCartRepository) FindByUserAndProduct(ctx context.Context, userID, productID string) (*domain.CartItem, error) {
	var doc mongoCartItem
	filter := bson.M{"user_id": userID, "product_id": productID}
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("find cart item: %w", err)
	}
	return toCartItem(&doc), nil
}

func (r *MongoCartRepository) FindByUser(ctx context.Context, userID string) ([]domain.CartItem, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *MongoCartRepository) List(ctx context.Context) ([]domain.CartItem, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoCartRepository) Delete(ctx context.Context, userID, productID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"user_id": userID, "product_id": productID})
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}

func (r *MongoCartRepository) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func (r *MongoCartRepository) find(ctx context.Context, filter bson.M) ([]domain.CartItem, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoCartItem
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode cart items: %w", err)
	}

	items := make([]domain.CartItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, *toCartItem(&doc))
	}
	return items, nil
}

func toCartItem(doc *mongoCartItem) *domain.CartItem {
	return &domain.CartItem{
		ID:        doc.ID.Hex(),
		UserID:    doc.UserID,
		ProductID: doc.ProductID,
		Quantity:  doc.Quantity,
		CreatedAt: unixToTime(doc.CreatedAt),
		UpdatedAt: unixToTime(doc.UpdatedAt),
	}
}
