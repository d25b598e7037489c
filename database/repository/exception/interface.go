// File: database/repository/exception/interface.go
package exceptionRepo

import (
	"context"
	"log"

	"slotgrid/database"
	"slotgrid/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ExceptionRepository persists a provider's time-off exceptions. Records
// are whole-record only: resolutions delete and insert, never patch.
type ExceptionRepository interface {
	Insert(ctx context.Context, exc *models.Exception) error
	DeleteByID(ctx context.Context, providerID, exceptionID string) error
	ListByProvider(ctx context.Context, providerID string) ([]models.Exception, error)
	GetByID(ctx context.Context, providerID, exceptionID string) (*models.Exception, error)
}

type mongoExceptionRepo struct {
	coll *mongo.Collection
}

// NewMongoExceptionRepo constructs a new MongoDB ExceptionRepository.
func NewMongoExceptionRepo() ExceptionRepository {
	db := database.MongoClient.Database("slotgrid")
	repo := &mongoExceptionRepo{
		coll: db.Collection("exceptions"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		log.Printf("exception indexes: %v", err)
	}
	return repo
}
