// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"
	"log"

	"slotgrid/database"
	"slotgrid/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AvailabilityRepository persists a provider's availability slots. The
// timeline engine only ever needs whole-record inserts and deletes; replace
// and merge resolutions are expressed as delete-then-insert sequences, and
// DeleteByID must complete before the follow-up Insert is issued.
type AvailabilityRepository interface {
	Insert(ctx context.Context, slot *models.AvailabilitySlot) error
	DeleteByID(ctx context.Context, providerID, slotID string) error
	ListByProvider(ctx context.Context, providerID string) ([]models.AvailabilitySlot, error)
	GetByID(ctx context.Context, providerID, slotID string) (*models.AvailabilitySlot, error)
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database("slotgrid")
	repo := &mongoAvailabilityRepo{
		coll: db.Collection("availability_slots"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		log.Printf("availability indexes: %v", err)
	}
	return repo
}
