package adminRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"servana/database"
	"servana/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAdminRepo is the MongoDB-backed implementation of AdminRepository.
type MongoAdminRepo struct {
	coll *mongo.Collection
}

// NewMongoAdminRepo returns a repo bound to the admins collection.
func NewMongoAdminRepo() *MongoAdminRepo {
	return &MongoAdminRepo{coll: database.Collection("admins")}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoAdminRepo) GetByID(id string) (*models.Admin, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var adm models.Admin
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&adm)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch admin %s: %w", id, err)
	}
	return &adm, nil
}

func (r *MongoAdminRepo) GetByEmail(email string) (*models.Admin, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var adm models.Admin
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&adm)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch admin by email: %w", err)
	}
	return &adm, nil
}

func (r *MongoAdminRepo) List(filter bson.M, skip, limit int64) ([]models.Admin, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if filter == nil {
		filter = bson.M{}
	}
	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count admins: %w", err)
	}

	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetProjection(bson.M{"passwordHash": 0})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list admins: %w", err)
	}
	defer cursor.Close(ctx)

	var admins []models.Admin
	if err := cursor.All(ctx, &admins); err != nil {
		return nil, 0, fmt.Errorf("failed to decode admins: %w", err)
	}
	return admins, total, nil
}

func (r *MongoAdminRepo) Create(admin *models.Admin) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	admin.CreatedAt = now
	admin.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, admin)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("admin with this email already exists: %w", err)
	}
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

func (r *MongoAdminRepo) Update(admin *models.Admin) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	admin.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": admin.ID}, bson.M{"$set": admin})
	if err != nil {
		return fmt.Errorf("failed to update admin with id %s: %w", admin.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("admin with id %s not found", admin.ID)
	}
	return nil
}

func (r *MongoAdminRepo) UpdateSet(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update admin with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("admin with id %s not found", id)
	}
	return nil
}

func (r *MongoAdminRepo) EnsureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create admin indexes: %w", err)
	}
	return nil
}
