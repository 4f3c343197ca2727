package repository

import (
	"context"
	"errors"

	"omnicassion/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoEventRepo struct {
	DB *mongo.Client
}

func NewMongoEventRepo(db *mongo.Client) *MongoEventRepo {
	return &MongoEventRepo{DB: db}
}

func (r *MongoEventRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("events")
}

func (r *MongoEventRepo) Upsert(rec *models.EventRecord) (*models.EventRecord, error) {
	ctx := context.Background()

	existing, err := r.GetByKey(rec.EventID)
	if err != nil {
		return nil, err
	}
	out := prepareEvent(existing, rec)

	_, err = r.collection().ReplaceOne(ctx,
		bson.M{"_id": out.EventID},
		out,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoEventRepo) List() ([]*models.EventRecord, error) {
	ctx := context.Background()

	cur, err := r.collection().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []*models.EventRecord{}
	for cur.Next(ctx) {
		var evt models.EventRecord
		if err := cur.Decode(&evt); err != nil {
			return nil, err
		}
		out = append(out, &evt)
	}
	return out, cur.Err()
}

func (r *MongoEventRepo) GetByKey(key string) (*models.EventRecord, error) {
	var evt models.EventRecord
	err := r.collection().FindOne(context.Background(), bson.M{"_id": key}).Decode(&evt)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &evt, nil
}

func (r *MongoEventRepo) Delete(key string) error {
	_, err := r.collection().DeleteOne(context.Background(), bson.M{"_id": key})
	return err
}
