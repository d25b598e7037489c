// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"

	"slotgrid/database"
	"slotgrid/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AppointmentRepository reads booked appointments. The booking subsystem
// owns the collection; this service never writes to it.
type AppointmentRepository interface {
	ListByProviderAndDate(ctx context.Context, providerID, date string) ([]models.Appointment, error)
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database("slotgrid")
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}
