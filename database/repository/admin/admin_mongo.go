package adminRepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sanocare/database"
	"sanocare/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when an admin email matches no row.
var ErrNotFound = errors.New("ops admin not found")

// AdminRepository defines operations-dashboard user data access.
type AdminRepository interface {
	Create(admin *models.OpsAdmin) (string, error)
	GetByEmail(email string) (*models.OpsAdmin, error)
}

// MongoAdminRepo implements AdminRepository using MongoDB.
type MongoAdminRepo struct {
	coll *mongo.Collection
}

// NewMongoAdminRepo creates an AdminRepository backed by the "ops_admins" collection.
func NewMongoAdminRepo() AdminRepository {
	return &MongoAdminRepo{coll: database.Collection("ops_admins")}
}

func (r *MongoAdminRepo) Create(admin *models.OpsAdmin) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	admin.ID = uuid.New().String()
	admin.Email = strings.ToLower(strings.TrimSpace(admin.Email))
	admin.CreatedAt = time.Now().UTC()

	if _, err := r.coll.InsertOne(ctx, admin); err != nil {
		return "", fmt.Errorf("failed to create ops admin: %w", err)
	}
	return admin.ID, nil
}

func (r *MongoAdminRepo) GetByEmail(email string) (*models.OpsAdmin, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var admin models.OpsAdmin
	filter := bson.M{"email": strings.ToLower(strings.TrimSpace(email))}
	if err := r.coll.FindOne(ctx, filter).Decode(&admin); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch ops admin %s: %w", email, err)
	}
	return &admin, nil
}
