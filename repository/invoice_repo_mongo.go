package repository

import (
	"context"
	"errors"

	"omnicassion/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoDatabase = "omnicassion"

type MongoInvoiceRepo struct {
	DB *mongo.Client
}

func NewMongoInvoiceRepo(db *mongo.Client) *MongoInvoiceRepo {
	return &MongoInvoiceRepo{DB: db}
}

func (r *MongoInvoiceRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("invoices")
}

// Upsert reads the stored record for the invoice number, merges the
// incoming write over it in-process so every backend shares the same
// semantics, and replaces the document with upsert enabled.
func (r *MongoInvoiceRepo) Upsert(rec *models.InvoiceRecord) (*models.InvoiceRecord, error) {
	ctx := context.Background()

	existing, err := r.GetByKey(rec.InvoiceNumber)
	if err != nil {
		return nil, err
	}
	out := prepareInvoice(existing, rec)

	_, err = r.collection().ReplaceOne(ctx,
		bson.M{"_id": out.InvoiceNumber},
		out,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoInvoiceRepo) List() ([]*models.InvoiceRecord, error) {
	ctx := context.Background()

	cur, err := r.collection().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []*models.InvoiceRecord{}
	for cur.Next(ctx) {
		var inv models.InvoiceRecord
		if err := cur.Decode(&inv); err != nil {
			return nil, err
		}
		out = append(out, &inv)
	}
	return out, cur.Err()
}

func (r *MongoInvoiceRepo) GetByKey(key string) (*models.InvoiceRecord, error) {
	var inv models.InvoiceRecord
	err := r.collection().FindOne(context.Background(), bson.M{"_id": key}).Decode(&inv)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

func (r *MongoInvoiceRepo) Delete(key string) error {
	_, err := r.collection().DeleteOne(context.Background(), bson.M{"_id": key})
	return err
}
