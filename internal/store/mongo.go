package store

import (
	"context"
	"errors"

	"github.com/serroba/hex-shortener/internal/shortener"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// MongoCollection is the collection redirects are kept in.
const MongoCollection = "redirects"

// redirectDocument is the persisted shape of a redirect.
type redirectDocument struct {
	CreatedAt int64  `bson:"created_at"`
	Code      string `bson:"code"`
	URL       string `bson:"url"`
}

// MongoStore is a MongoDB implementation of shortener.Repository.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoStore creates a store on the redirects collection of database.
func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	return &MongoStore{
		client:     client,
		collection: client.Database(database).Collection(MongoCollection),
	}
}

func (m *MongoStore) Find(ctx context.Context, code string) (*shortener.Redirect, error) {
	var doc redirectDocument

	err := m.collection.FindOne(ctx, bson.D{{Key: "code", Value: code}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, shortener.ErrNotFound
		}

		return nil, shortener.ServerError("mongo find", err)
	}

	return &shortener.Redirect{
		Code:      doc.Code,
		URL:       doc.URL,
		CreatedAt: doc.CreatedAt,
	}, nil
}

func (m *MongoStore) Store(ctx context.Context, redirect *shortener.Redirect) error {
	doc := redirectDocument{
		CreatedAt: redirect.CreatedAt,
		Code:      redirect.Code,
		URL:       redirect.URL,
	}

	if _, err := m.collection.InsertOne(ctx, doc); err != nil {
		return shortener.ServerError("mongo store", err)
	}

	return nil
}

// Ping checks MongoDB connectivity against the primary.
func (m *MongoStore) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

// Compile-time check.
var _ shortener.Repository = (*MongoStore)(nil)
