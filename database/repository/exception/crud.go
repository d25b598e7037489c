// File: database/repository/exception/crud.go
package exceptionRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"slotgrid/models"
)

func (r *mongoExceptionRepo) Insert(ctx context.Context, exc *models.Exception) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if exc.ID == "" {
		exc.ID = uuid.New().String()
	}
	if exc.CreatedAt.IsZero() {
		exc.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, exc); err != nil {
		return fmt.Errorf("failed to insert exception: %w", err)
	}
	return nil
}

func (r *mongoExceptionRepo) DeleteByID(ctx context.Context, providerID, exceptionID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": exceptionID, "provider_id": providerID}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoExceptionRepo) GetByID(ctx context.Context, providerID, exceptionID string) (*models.Exception, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": exceptionID, "provider_id": providerID}
	var exc models.Exception
	if err := r.coll.FindOne(ctx, filter).Decode(&exc); err != nil {
		return nil, err
	}
	return &exc, nil
}
