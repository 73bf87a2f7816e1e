package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepository struct {
	Users            *mongo.Collection
	Cases            *mongo.Collection
	Assignments      *mongo.Collection
	Evidence         *mongo.Collection
	DeletionRequests *mongo.Collection
	AuditLogs        *mongo.Collection
	Reports          *mongo.Collection
	Persons          *mongo.Collection
	Comments         *mongo.Collection
	Counters         *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{
		Users:            db.Collection("users"),
		Cases:            db.Collection("cases"),
		Assignments:      db.Collection("case_assignments"),
		Evidence:         db.Collection("evidence"),
		DeletionRequests: db.Collection("deletion_requests"),
		AuditLogs:        db.Collection("audit_logs"),
		Reports:          db.Collection("reports"),
		Persons:          db.Collection("persons"),
		Comments:         db.Collection("comments"),
		Counters:         db.Collection("counters"),
	}
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	// 1. Users: unique email
	idxUserEmail := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_user_email"),
	}
	if _, err := r.Users.Indexes().CreateOne(ctx, idxUserEmail); err != nil {
		return err
	}

	// 2. Assignments: one row per (case, user)
	idxAssignment := mongo.IndexModel{
		Keys: bson.D{
			{Key: "case_id", Value: 1},
			{Key: "user_id", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_assignment_per_case_user"),
	}
	if _, err := r.Assignments.Indexes().CreateOne(ctx, idxAssignment); err != nil {
		return err
	}

	// 3. Deletion requests: at most one non-finalized workflow per
	// (evidence, user). Rows are removed on finalize or cancel, so plain
	// uniqueness enforces the invariant; the index also backstops a race
	// between two concurrent initiates.
	idxDeletion := mongo.IndexModel{
		Keys: bson.D{
			{Key: "evidence_id", Value: 1},
			{Key: "user_id", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_deletion_per_evidence_user"),
	}
	if _, err := r.DeletionRequests.Indexes().CreateOne(ctx, idxDeletion); err != nil {
		return err
	}

	// 4. Lookup indexes for filtered scans
	idxEvidenceCase := mongo.IndexModel{
		Keys:    bson.D{{Key: "case_id", Value: 1}},
		Options: options.Index().SetName("idx_evidence_case"),
	}
	if _, err := r.Evidence.Indexes().CreateOne(ctx, idxEvidenceCase); err != nil {
		return err
	}

	idxAudit := mongo.IndexModel{
		Keys: bson.D{
			{Key: "evidence_id", Value: 1},
			{Key: "action", Value: 1},
		},
		Options: options.Index().SetName("idx_audit_evidence_action"),
	}
	if _, err := r.AuditLogs.Indexes().CreateOne(ctx, idxAudit); err != nil {
		return err
	}

	idxPersonCase := mongo.IndexModel{
		Keys:    bson.D{{Key: "case_id", Value: 1}, {Key: "type", Value: 1}},
		Options: options.Index().SetName("idx_person_case_type"),
	}
	_, err := r.Persons.Indexes().CreateOne(ctx, idxPersonCase)
	return err
}

// nextSequence allocates the next numeric id for a collection from the
// counters collection (atomic $inc, upserting the counter on first use).
func (r *MongoRepository) nextSequence(ctx context.Context, name string) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.Counters.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}
