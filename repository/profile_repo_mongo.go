package repository

import (
	"context"
	"errors"
	"time"

	"omnicassion/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoProfileRepo struct {
	DB *mongo.Client
}

func NewMongoProfileRepo(db *mongo.Client) *MongoProfileRepo {
	return &MongoProfileRepo{DB: db}
}

func (r *MongoProfileRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("company_profile")
}

// SaveProfile keeps a single profile document under a fixed id.
func (r *MongoProfileRepo) SaveProfile(profile *models.CompanyProfile) error {
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}
	profile.ID = 1

	_, err := r.collection().ReplaceOne(context.Background(),
		bson.M{"_id": profile.ID},
		profile,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *MongoProfileRepo) GetProfile() (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	err := r.collection().FindOne(context.Background(), bson.M{"_id": 1}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
