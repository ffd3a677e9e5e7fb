package paramedicRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sanocare/database"
	"sanocare/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoParamedicRepo implements ParamedicRepository using MongoDB.
type MongoParamedicRepo struct {
	coll *mongo.Collection
}

// NewMongoParamedicRepo creates a ParamedicRepository backed by the "paramedics" collection.
func NewMongoParamedicRepo() ParamedicRepository {
	return &MongoParamedicRepo{coll: database.Collection("paramedics")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new paramedic document with a store-assigned id.
func (r *MongoParamedicRepo) Create(p *models.Paramedic) (string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	p.ID = uuid.New().String()
	p.CreatedAt = time.Now().UTC()
	if p.Specialty == "" {
		p.Specialty = models.DefaultSpecialty
	}

	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return "", fmt.Errorf("failed to create paramedic: %w", err)
	}
	return p.ID, nil
}

func (r *MongoParamedicRepo) GetByID(id string) (*models.Paramedic, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.Paramedic
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch paramedic %s: %w", id, err)
	}
	if p.Specialty == "" {
		p.Specialty = models.DefaultSpecialty
	}
	return &p, nil
}

func (r *MongoParamedicRepo) GetAll() ([]models.Paramedic, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve paramedics: %w", err)
	}
	defer cursor.Close(ctx)

	var paramedics []models.Paramedic
	for cursor.Next(ctx) {
		var p models.Paramedic
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode paramedic: %w", err)
		}
		if p.ID == "" {
			continue
		}
		if p.Specialty == "" {
			p.Specialty = models.DefaultSpecialty
		}
		paramedics = append(paramedics, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error while reading paramedics: %w", err)
	}
	return paramedics, nil
}

// Update modifies an existing paramedic document.
func (r *MongoParamedicRepo) Update(p *models.Paramedic) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":      p.Name,
		"phone":     p.Phone,
		"specialty": p.Specialty,
		"isActive":  p.IsActive,
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": p.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update paramedic %s: %w", p.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetActive toggles the on-duty flag.
func (r *MongoParamedicRepo) SetActive(id string, active bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"isActive": active}})
	if err != nil {
		return fmt.Errorf("failed to toggle paramedic %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a paramedic document by its id.
func (r *MongoParamedicRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete paramedic %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
