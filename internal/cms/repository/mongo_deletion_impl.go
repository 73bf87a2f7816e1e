package repository

import (
	"context"
	"errors"
	"time"

	"casetrack/internal/cms/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetPendingDeletionRequest returns the non-finalized workflow row for the
// (evidence, user) pair, if any.
func (r *MongoRepository) GetPendingDeletionRequest(ctx context.Context, evidenceID, userID int64) (*model.DeletionRequest, error) {
	var req model.DeletionRequest
	err := r.DeletionRequests.FindOne(ctx, bson.M{
		"evidence_id": evidenceID,
		"user_id":     userID,
		"status":      bson.M{"$ne": model.DeletionStatusFinalized},
	}).Decode(&req)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

// GetDeletionRequestByEvidence returns any workflow row for the evidence id
// regardless of requesting user; the status projection reads through this.
func (r *MongoRepository) GetDeletionRequestByEvidence(ctx context.Context, evidenceID int64) (*model.DeletionRequest, error) {
	var req model.DeletionRequest
	err := r.DeletionRequests.FindOne(ctx, bson.M{"evidence_id": evidenceID}).Decode(&req)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *MongoRepository) CreateDeletionRequest(ctx context.Context, req *model.DeletionRequest) error {
	id, err := r.nextSequence(ctx, "deletion_requests")
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	req.ID = id
	req.CreatedAt = now
	req.UpdatedAt = now

	if _, err := r.DeletionRequests.InsertOne(ctx, req); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// UpdateDeletionRequestStatus advances the workflow with a compare-and-swap:
// the update matches only while the row still holds the expected prior
// status. ErrStale means a concurrent writer advanced (or removed) the row,
// never that the caller's write was silently lost.
func (r *MongoRepository) UpdateDeletionRequestStatus(ctx context.Context, evidenceID, userID int64, from, to string) error {
	res, err := r.DeletionRequests.UpdateOne(ctx,
		bson.M{
			"evidence_id": evidenceID,
			"user_id":     userID,
			"status":      from,
		},
		bson.M{"$set": bson.M{"status": to, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrStale
	}
	return nil
}

// DeleteDeletionRequest removes the workflow row, conditioned on the expected
// status for the same lost-update protection as the status update.
func (r *MongoRepository) DeleteDeletionRequest(ctx context.Context, evidenceID, userID int64, expectStatus string) error {
	res, err := r.DeletionRequests.DeleteOne(ctx, bson.M{
		"evidence_id": evidenceID,
		"user_id":     userID,
		"status":      expectStatus,
	})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrStale
	}
	return nil
}
