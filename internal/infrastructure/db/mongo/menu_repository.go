package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bistroboss/bistro-api/internal/core/domain"
)

const menusCollection = "menus"

type MenuRepository struct {
	coll *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{coll: db.Collection(menusCollection)}
}

type mongoMenuItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Recipe   string             `bson:"recipe,omitempty"`
	Image    string             `bson:"image,omitempty"`
	Category string             `bson:"category"`
	Price    float64            `bson:"price"`
}

func (mi mongoMenuItem) toDomain() *domain.MenuItem {
	return &domain.MenuItem{
		ID:       mi.ID.Hex(),
		Name:     mi.Name,
		Recipe:   mi.Recipe,
		Image:    mi.Image,
		Category: mi.Category,
		Price:    mi.Price,
	}
}

func (r *MenuRepository) List(ctx context.Context) ([]*domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	defer cur.Close(ctx)

	items := make([]*domain.MenuItem, 0)
	for cur.Next(ctx) {
		var mi mongoMenuItem
		if err := cur.Decode(&mi); err != nil {
			return nil, fmt.Errorf("decode menu item: %w", err)
		}
		items = append(items, mi.toDomain())
	}
	return items, cur.Err()
}

func (r *MenuRepository) Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoMenuItem{
		Name:     item.Name,
		Recipe:   item.Recipe,
		Image:    item.Image,
		Category: item.Category,
		Price:    item.Price,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert menu item: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toDomain(), nil
}

func (r *MenuRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMenuItemNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMenuItemNotFound
	}
	return nil
}

func (r *MenuRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.coll.EstimatedDocumentCount(ctx)
}
