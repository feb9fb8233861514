package metadata

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/indieinfra/imagebin/config"
)

// imageCollection is the subset of *mongo.Collection the store uses.
type imageCollection interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

var connectMongo = func(ctx context.Context, uri string) (*mongo.Client, error) {
	return mongo.Connect(ctx, options.Client().ApplyURI(uri))
}

// MongoStore persists image records in a MongoDB collection.
type MongoStore struct {
	collection imageCollection
	now        func() time.Time
}

func NewMongoStore(cfg *config.MongoMetadataStrategy) (*MongoStore, error) {
	if cfg == nil {
		return nil, fmt.Errorf("mongo metadata config is nil")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := connectMongo(ctx, cfg.Uri)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoStore{
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
		now:        time.Now,
	}, nil
}

func (s *MongoStore) Insert(ctx context.Context, record *ImageRecord) (string, error) {
	record.ID = primitive.NewObjectID().Hex()
	if record.UploadedAt.IsZero() {
		record.UploadedAt = s.now().UTC()
	}

	if _, err := s.collection.InsertOne(ctx, record); err != nil {
		return "", fmt.Errorf("insert image record: %w", err)
	}

	return record.ID, nil
}

func (s *MongoStore) FindAll(ctx context.Context) ([]ImageRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "uploadedAt", Value: -1}})

	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find image records: %w", err)
	}

	records := []ImageRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode image records: %w", err)
	}

	return records, nil
}

func (s *MongoStore) FindByID(ctx context.Context, id string) (*ImageRecord, error) {
	var record ImageRecord

	if err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("find image record %q: %w", id, err)
	}

	return &record, nil
}

func (s *MongoStore) DeleteByID(ctx context.Context, id string) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete image record %q: %w", id, err)
	}

	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}
