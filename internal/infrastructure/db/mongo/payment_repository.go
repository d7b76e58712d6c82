package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bistroboss/bistro-api/internal/core/domain"
)

const paymentsCollection = "payments"

// PaymentRepository persists payments and owns the cart-cleanup cascade and
// the order statistics aggregation.
type PaymentRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{db: db, coll: db.Collection(paymentsCollection)}
}

type mongoPayment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Email         string             `bson:"email"`
	Price         float64            `bson:"price"`
	TransactionID string             `bson:"transaction_id,omitempty"`
	Date          primitive.DateTime `bson:"date"`
	CartItemIDs   []string           `bson:"cartItems"`
	MenuItemIDs   []string           `bson:"menuItems"`
	Status        string             `bson:"status,omitempty"`
}

func (mp mongoPayment) toDomain() *domain.Payment {
	return &domain.Payment{
		ID:            mp.ID.Hex(),
		Email:         mp.Email,
		Price:         mp.Price,
		TransactionID: mp.TransactionID,
		Date:          mp.Date.Time().UTC(),
		CartItemIDs:   mp.CartItemIDs,
		MenuItemIDs:   mp.MenuItemIDs,
		Status:        mp.Status,
	}
}

// Record inserts the payment and deletes the referenced cart items in one
// session transaction, so a crash cannot leave a recorded payment alongside
// its consumed cart entries.
func (r *PaymentRepository) Record(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoPayment{
		Email:         payment.Email,
		Price:         payment.Price,
		TransactionID: payment.TransactionID,
		Date:          primitive.NewDateTimeFromTime(payment.Date),
		CartItemIDs:   payment.CartItemIDs,
		MenuItemIDs:   payment.MenuItemIDs,
		Status:        payment.Status,
	}

	cartIDs := make([]primitive.ObjectID, 0, len(payment.CartItemIDs))
	for _, id := range payment.CartItemIDs {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, fmt.Errorf("record payment: bad cart item id %q: %w", id, err)
		}
		cartIDs = append(cartIDs, oid)
	}

	session, err := r.db.Client().StartSession()
	if err != nil {
		return nil, fmt.Errorf("record payment: start session: %w", err)
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := r.coll.InsertOne(sc, doc)
		if err != nil {
			return nil, fmt.Errorf("insert payment: %w", err)
		}

		if len(cartIDs) > 0 {
			carts := r.db.Collection(cartsCollection)
			if _, err := carts.DeleteMany(sc, bson.M{"_id": bson.M{"$in": cartIDs}}); err != nil {
				return nil, fmt.Errorf("delete cart items: %w", err)
			}
		}

		return res.InsertedID, nil
	})
	if err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	if oid, ok := result.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toDomain(), nil
}

func (r *PaymentRepository) List(ctx context.Context) ([]*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer cur.Close(ctx)

	payments := make([]*domain.Payment, 0)
	for cur.Next(ctx) {
		var mp mongoPayment
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode payment: %w", err)
		}
		payments = append(payments, mp.toDomain())
	}
	return payments, cur.Err()
}

func (r *PaymentRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.coll.EstimatedDocumentCount(ctx)
}

// OrderStats joins each payment's menu item references against the menus
// collection and groups by category. Stored ids are strings, so they are
// mapped to ObjectIDs before the $lookup. Unmatched references (menu items
// deleted since purchase) drop out of the join.
func (r *PaymentRepository) OrderStats(ctx context.Context) ([]*domain.CategoryStat, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$addFields", Value: bson.M{
			"menuItemObjectIds": bson.M{
				"$map": bson.M{
					"input": "$menuItems",
					"as":    "id",
					"in":    bson.M{"$toObjectId": "$$id"},
				},
			},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         menusCollection,
			"localField":   "menuItemObjectIds",
			"foreignField": "_id",
			"as":           "purchasedItems",
		}}},
		{{Key: "$unwind", Value: "$purchasedItems"}},
		{{Key: "$group", Value: bson.M{
			"_id":        "$purchasedItems.category",
			"count":      bson.M{"$sum": 1},
			"totalPrice": bson.M{"$sum": "$purchasedItems.price"},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":        0,
			"category":   "$_id",
			"count":      1,
			"totalPrice": 1,
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("order stats: %w", err)
	}
	defer cur.Close(ctx)

	stats := make([]*domain.CategoryStat, 0)
	if err := cur.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("order stats: decode: %w", err)
	}
	return stats, nil
}
