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

func (r *MongoRepository) CreateAuditLog(ctx context.Context, entry *model.AuditLog) error {
	id, err := r.nextSequence(ctx, "audit_logs")
	if err != nil {
		return err
	}
	entry.ID = id
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	_, err = r.AuditLogs.InsertOne(ctx, entry)
	return err
}

func (r *MongoRepository) GetAuditLogByEvidenceAction(ctx context.Context, evidenceID int64, action string) (*model.AuditLog, error) {
	var entry model.AuditLog
	err := r.AuditLogs.FindOne(ctx, bson.M{"evidence_id": evidenceID, "action": action}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *MongoRepository) ListAuditLogsByEvidenceIDs(ctx context.Context, evidenceIDs []int64) ([]*model.AuditLog, error) {
	if len(evidenceIDs) == 0 {
		return []*model.AuditLog{}, nil
	}

	cursor, err := r.AuditLogs.Find(ctx,
		bson.M{"evidence_id": bson.M{"$in": evidenceIDs}},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*model.AuditLog
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
