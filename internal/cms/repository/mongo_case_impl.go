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

func (r *MongoRepository) GetCaseByID(ctx context.Context, id int64) (*model.Case, error) {
	var c model.Case
	err := r.Cases.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *MongoRepository) CreateCase(ctx context.Context, c *model.Case) error {
	id, err := r.nextSequence(ctx, "cases")
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	c.ID = id
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err = r.Cases.InsertOne(ctx, c)
	return err
}

func (r *MongoRepository) UpdateCaseFields(ctx context.Context, id int64, fields map[string]interface{}) (*model.Case, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}

	var c model.Case
	err := r.Cases.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *MongoRepository) GetAssignment(ctx context.Context, caseID, userID int64) (*model.CaseAssignment, error) {
	var a model.CaseAssignment
	err := r.Assignments.FindOne(ctx, bson.M{"case_id": caseID, "user_id": userID}).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *MongoRepository) CreateAssignment(ctx context.Context, a *model.CaseAssignment) error {
	id, err := r.nextSequence(ctx, "case_assignments")
	if err != nil {
		return err
	}
	a.ID = id
	a.CreatedAt = time.Now().UTC()

	if _, err := r.Assignments.InsertOne(ctx, a); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *MongoRepository) DeleteAssignment(ctx context.Context, caseID, userID int64) error {
	res, err := r.Assignments.DeleteOne(ctx, bson.M{"case_id": caseID, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
