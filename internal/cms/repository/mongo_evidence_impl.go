package repository

import (
	"context"
	"errors"
	"time"

	"casetrack/internal/cms/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoRepository) GetEvidenceByID(ctx context.Context, id int64) (*model.Evidence, error) {
	var e model.Evidence
	err := r.Evidence.FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// ListCaseEvidence returns the case's evidence hiding soft-deleted rows.
func (r *MongoRepository) ListCaseEvidence(ctx context.Context, caseID int64) ([]*model.Evidence, error) {
	cursor, err := r.Evidence.Find(ctx,
		bson.M{"case_id": caseID, "deleted": false},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var evidence []*model.Evidence
	if err := cursor.All(ctx, &evidence); err != nil {
		return nil, err
	}
	return evidence, nil
}

// ListCaseEvidenceIDs returns every evidence id ever attached to the case,
// soft-deleted rows included, for the audit trail projection.
func (r *MongoRepository) ListCaseEvidenceIDs(ctx context.Context, caseID int64) ([]int64, error) {
	cursor, err := r.Evidence.Find(ctx,
		bson.M{"case_id": caseID},
		options.Find().SetProjection(bson.M{"_id": 1}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID int64 `bson:"_id"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids, nil
}

func (r *MongoRepository) CreateEvidence(ctx context.Context, e *model.Evidence) error {
	id, err := r.nextSequence(ctx, "evidence")
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	e.ID = id
	e.CreatedAt = now
	e.UpdatedAt = now

	_, err = r.Evidence.InsertOne(ctx, e)
	return err
}

func (r *MongoRepository) UpdateEvidenceFields(ctx context.Context, id int64, fields map[string]interface{}) (*model.Evidence, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}

	var e model.Evidence
	err := r.Evidence.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "deleted": false},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// SoftDeleteEvidence flips the deleted flag. Conditioned on deleted=false so a
// second call reports ErrNotFound instead of rewriting the row.
func (r *MongoRepository) SoftDeleteEvidence(ctx context.Context, id int64) (*model.Evidence, error) {
	var e model.Evidence
	err := r.Evidence.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "deleted": false},
		bson.M{"$set": bson.M{"deleted": true, "updated_at": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// DeleteEvidence removes the row permanently. Only the deletion workflow may
// call this, after the audit entry is written.
func (r *MongoRepository) DeleteEvidence(ctx context.Context, id int64) error {
	res, err := r.Evidence.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
