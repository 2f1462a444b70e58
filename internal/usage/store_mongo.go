package usage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/just-manoj/PathoAi-API/internal/shared/storage/mongodb"
	"github.com/just-manoj/PathoAi-API/internal/vision"
)

const collectionName = "UsageLimit"

type usageDoc struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Date    string             `bson:"date"`
	JRUsed  int                `bson:"jrUsed"`
	SRUsed  int                `bson:"srUsed"`
	JRLimit int                `bson:"jrLimit"`
	SRLimit int                `bson:"srLimit"`
}

func (d usageDoc) record() Record {
	rec := Record{
		Date:    d.Date,
		JRUsed:  d.JRUsed,
		SRUsed:  d.SRUsed,
		JRLimit: d.JRLimit,
		SRLimit: d.SRLimit,
	}
	if !d.ID.IsZero() {
		rec.ID = d.ID.Hex()
	}
	return rec
}

// MongoStore persists usage-limit records in the UsageLimit collection.
type MongoStore struct {
	Gateway *mongodb.Gateway
}

// NewMongoStore constructs a Mongo-backed usage store.
func NewMongoStore(gateway *mongodb.Gateway) *MongoStore {
	return &MongoStore{Gateway: gateway}
}

func (s *MongoStore) collection() (*mongo.Collection, error) {
	db, err := s.Gateway.Database()
	if err != nil {
		return nil, err
	}
	return db.Collection(collectionName), nil
}

// Find returns the record for the given date key.
func (s *MongoStore) Find(ctx context.Context, date string) (Record, bool, error) {
	coll, err := s.collection()
	if err != nil {
		return Record{}, false, err
	}

	var doc usageDoc
	err = coll.FindOne(ctx, bson.M{"date": date}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Record{}, false, nil
		}
		return Record{}, false, fmt.Errorf("find usage limit: %w", err)
	}
	return doc.record(), true, nil
}

// IncrementIfBelow issues a single conditional update: the $inc only
// applies when the matching counter is still below its limit, so the
// stored value can never pass the ceiling even under concurrent requests.
func (s *MongoStore) IncrementIfBelow(ctx context.Context, date string, tier vision.Tier) (bool, error) {
	coll, err := s.collection()
	if err != nil {
		return false, err
	}

	usedField, limitField := "jrUsed", "jrLimit"
	if tier == vision.TierSR {
		usedField, limitField = "srUsed", "srLimit"
	}

	filter := bson.M{
		"date":  date,
		"$expr": bson.M{"$lt": bson.A{"$" + usedField, "$" + limitField}},
	}
	res, err := coll.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{usedField: 1}})
	if err != nil {
		return false, fmt.Errorf("increment usage: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

// List returns every usage-limit record in natural order.
func (s *MongoStore) List(ctx context.Context) ([]Record, error) {
	coll, err := s.collection()
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list usage limits: %w", err)
	}
	defer cursor.Close(ctx)

	records := []Record{}
	for cursor.Next(ctx) {
		var doc usageDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode usage limit: %w", err)
		}
		records = append(records, doc.record())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list usage limits: %w", err)
	}
	return records, nil
}
