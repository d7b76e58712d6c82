package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bistroboss/bistro-api/internal/core/domain"
)

const reviewsCollection = "reviews"

type ReviewRepository struct {
	coll *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{coll: db.Collection(reviewsCollection)}
}

type mongoReview struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Name    string             `bson:"name"`
	Details string             `bson:"details"`
	Rating  float64            `bson:"rating"`
}

func (r *ReviewRepository) List(ctx context.Context) ([]*domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer cur.Close(ctx)

	reviews := make([]*domain.Review, 0)
	for cur.Next(ctx) {
		var mr mongoReview
		if err := cur.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode review: %w", err)
		}
		reviews = append(reviews, &domain.Review{
			ID:      mr.ID.Hex(),
			Name:    mr.Name,
			Details: mr.Details,
			Rating:  mr.Rating,
		})
	}
	return reviews, cur.Err()
}
