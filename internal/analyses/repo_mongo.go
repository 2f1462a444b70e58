package analyses

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/just-manoj/PathoAi-API/internal/shared/storage/mongodb"
	"github.com/just-manoj/PathoAi-API/internal/vision"
)

const collectionName = "Analysis"

type analysisDoc struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty"`
	SlideImage           string             `bson:"slideImage"`
	Organ                string             `bson:"organ"`
	ClinicalContext      string             `bson:"clinicalContext"`
	Model                string             `bson:"model"`
	Observation          string             `bson:"observation,omitempty"`
	PreliminaryDiagnosis string             `bson:"preliminaryDiagnosis,omitempty"`
	ConfidenceLevel      string             `bson:"confidenceLevel,omitempty"`
	Disclaimer           string             `bson:"disclaimer,omitempty"`
	CreatedAt            time.Time          `bson:"createdAt"`
	Feedback             *Feedback          `bson:"feedback,omitempty"`
}

func toDoc(a Analysis) analysisDoc {
	return analysisDoc{
		SlideImage:           a.SlideImage,
		Organ:                a.Organ,
		ClinicalContext:      a.ClinicalContext,
		Model:                string(a.Model),
		Observation:          a.Observation,
		PreliminaryDiagnosis: a.PreliminaryDiagnosis,
		ConfidenceLevel:      a.ConfidenceLevel,
		Disclaimer:           a.Disclaimer,
		CreatedAt:            a.CreatedAt,
		Feedback:             a.Feedback,
	}
}

func (d analysisDoc) analysis() Analysis {
	a := Analysis{
		SlideImage:           d.SlideImage,
		Organ:                d.Organ,
		ClinicalContext:      d.ClinicalContext,
		Model:                vision.Tier(d.Model),
		Observation:          d.Observation,
		PreliminaryDiagnosis: d.PreliminaryDiagnosis,
		ConfidenceLevel:      d.ConfidenceLevel,
		Disclaimer:           d.Disclaimer,
		CreatedAt:            d.CreatedAt,
		Feedback:             d.Feedback,
	}
	if !d.ID.IsZero() {
		a.ID = d.ID.Hex()
	}
	return a
}

// MongoRepo persists analyses in the Analysis collection.
type MongoRepo struct {
	Gateway *mongodb.Gateway
}

// NewMongoRepo constructs a Mongo-backed analyses repository.
func NewMongoRepo(gateway *mongodb.Gateway) *MongoRepo {
	return &MongoRepo{Gateway: gateway}
}

func (r *MongoRepo) collection() (*mongo.Collection, error) {
	db, err := r.Gateway.Database()
	if err != nil {
		return nil, err
	}
	return db.Collection(collectionName), nil
}

// Insert stores the analysis and returns the assigned ObjectID as hex.
func (r *MongoRepo) Insert(ctx context.Context, a Analysis) (string, error) {
	coll, err := r.collection()
	if err != nil {
		return "", err
	}

	res, err := coll.InsertOne(ctx, toDoc(a))
	if err != nil {
		return "", fmt.Errorf("insert analysis: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert analysis: unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// AttachFeedback sets the feedback sub-object on the matching document.
func (r *MongoRepo) AttachFeedback(ctx context.Context, analysisID string, fb Feedback) error {
	oid, err := primitive.ObjectIDFromHex(analysisID)
	if err != nil {
		return ErrInvalidID
	}

	coll, err := r.collection()
	if err != nil {
		return err
	}

	res, err := coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"feedback": fb}},
	)
	if err != nil {
		return fmt.Errorf("update analysis feedback: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns all analyses in the store's natural iteration order.
func (r *MongoRepo) List(ctx context.Context) ([]Analysis, error) {
	coll, err := r.collection()
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	defer cursor.Close(ctx)

	analyses := []Analysis{}
	for cursor.Next(ctx) {
		var doc analysisDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode analysis: %w", err)
		}
		analyses = append(analyses, doc.analysis())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	return analyses, nil
}
