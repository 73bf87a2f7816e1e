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

// Reports, persons and comments: the citizen-intake side of the system.

func (r *MongoRepository) CreateReport(ctx context.Context, report *model.Report) error {
	id, err := r.nextSequence(ctx, "reports")
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	report.ID = id
	report.CreatedAt = now
	report.UpdatedAt = now

	_, err = r.Reports.InsertOne(ctx, report)
	return err
}

func (r *MongoRepository) GetReportByID(ctx context.Context, id int64) (*model.Report, error) {
	var report model.Report
	err := r.Reports.FindOne(ctx, bson.M{"_id": id}).Decode(&report)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (r *MongoRepository) LinkReportsToCase(ctx context.Context, reportIDs []int64, caseID int64) error {
	if len(reportIDs) == 0 {
		return nil
	}
	_, err := r.Reports.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": reportIDs}},
		bson.M{"$set": bson.M{"case_id": caseID, "updated_at": time.Now().UTC()}},
	)
	return err
}

func (r *MongoRepository) CreatePerson(ctx context.Context, p *model.Person) error {
	id, err := r.nextSequence(ctx, "persons")
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	p.ID = id
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err = r.Persons.InsertOne(ctx, p)
	return err
}

func (r *MongoRepository) UpdatePersonFields(ctx context.Context, id int64, fields map[string]interface{}) (*model.Person, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}

	var p model.Person
	err := r.Persons.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *MongoRepository) ListCasePersons(ctx context.Context, caseID int64, personType string) ([]*model.Person, error) {
	filter := bson.M{"case_id": caseID}
	if personType != "" {
		filter["type"] = personType
	}

	cursor, err := r.Persons.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var persons []*model.Person
	if err := cursor.All(ctx, &persons); err != nil {
		return nil, err
	}
	return persons, nil
}

func (r *MongoRepository) CreateComment(ctx context.Context, c *model.Comment) error {
	id, err := r.nextSequence(ctx, "comments")
	if err != nil {
		return err
	}
	c.ID = id
	c.CreatedAt = time.Now().UTC()

	_, err = r.Comments.InsertOne(ctx, c)
	return err
}

// ListCaseComments returns a case's comments, newest first.
func (r *MongoRepository) ListCaseComments(ctx context.Context, caseID int64) ([]*model.Comment, error) {
	cursor, err := r.Comments.Find(ctx,
		bson.M{"case_id": caseID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var comments []*model.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// DeleteComment removes a comment, scoped to its case so a comment id from a
// different case reads as absent.
func (r *MongoRepository) DeleteComment(ctx context.Context, caseID, commentID int64) error {
	res, err := r.Comments.DeleteOne(ctx, bson.M{"_id": commentID, "case_id": caseID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
