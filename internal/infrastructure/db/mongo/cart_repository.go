package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bistroboss/bistro-api/internal/core/domain"
)

const cartsCollection = "carts"

type CartRepository struct {
	coll *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{coll: db.Collection(cartsCollection)}
}

type mongoCartItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	MenuItemID string             `bson:"menu_item_id"`
	Name       string             `bson:"name"`
	Image      string             `bson:"image,omitempty"`
	Price      float64            `bson:"price"`
	Email      string             `bson:"email"`
}

func (ci mongoCartItem) toDomain() *domain.CartItem {
	return &domain.CartItem{
		ID:         ci.ID.Hex(),
		MenuItemID: ci.MenuItemID,
		Name:       ci.Name,
		Image:      ci.Image,
		Price:      ci.Price,
		Email:      ci.Email,
	}
}

func (r *CartRepository) Add(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoCartItem{
		MenuItemID: item.MenuItemID,
		Name:       item.Name,
		Image:      item.Image,
		Price:      item.Price,
		Email:      item.Email,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert cart item: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toDomain(), nil
}

func (r *CartRepository) ListByOwner(ctx context.Context, email string) ([]*domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer cur.Close(ctx)

	items := make([]*domain.CartItem, 0)
	for cur.Next(ctx) {
		var ci mongoCartItem
		if err := cur.Decode(&ci); err != nil {
			return nil, fmt.Errorf("decode cart item: %w", err)
		}
		items = append(items, ci.toDomain())
	}
	return items, cur.Err()
}

func (r *CartRepository) FindByID(ctx context.Context, id string) (*domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCartItemNotFound
	}

	var ci mongoCartItem
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ci); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("find cart item: %w", err)
	}
	return ci.toDomain(), nil
}

func (r *CartRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCartItemNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}

// EnsureIndexes creates the owner index cart listing relies on.
func (r *CartRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
	})
	return err
}
