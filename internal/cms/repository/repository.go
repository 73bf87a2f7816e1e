package repository

import (
	"context"
	"errors"

	"casetrack/internal/cms/model"
)

var (
	// ErrDuplicate is returned when a unique index rejects an insert.
	ErrDuplicate = errors.New("duplicate record")
	// ErrNotFound is returned for point lookups that match nothing.
	ErrNotFound = errors.New("record not found")
	// ErrStale is returned by conditional writes when the row no longer holds
	// the expected status, i.e. a concurrent writer advanced the state first.
	ErrStale = errors.New("stale status")
)

// Repository is the storage surface the services consume. Every call is a
// single atomic statement; no multi-statement transactions are assumed.
type Repository interface {
	// Users
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	UpdateUserFields(ctx context.Context, id int64, fields map[string]interface{}) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)

	// Cases
	GetCaseByID(ctx context.Context, id int64) (*model.Case, error)
	CreateCase(ctx context.Context, c *model.Case) error
	UpdateCaseFields(ctx context.Context, id int64, fields map[string]interface{}) (*model.Case, error)

	// Case assignments
	GetAssignment(ctx context.Context, caseID, userID int64) (*model.CaseAssignment, error)
	CreateAssignment(ctx context.Context, a *model.CaseAssignment) error
	DeleteAssignment(ctx context.Context, caseID, userID int64) error

	// Evidence
	GetEvidenceByID(ctx context.Context, id int64) (*model.Evidence, error)
	ListCaseEvidence(ctx context.Context, caseID int64) ([]*model.Evidence, error)
	ListCaseEvidenceIDs(ctx context.Context, caseID int64) ([]int64, error)
	CreateEvidence(ctx context.Context, e *model.Evidence) error
	UpdateEvidenceFields(ctx context.Context, id int64, fields map[string]interface{}) (*model.Evidence, error)
	SoftDeleteEvidence(ctx context.Context, id int64) (*model.Evidence, error)
	DeleteEvidence(ctx context.Context, id int64) error

	// Deletion requests. Status-changing writes are conditioned on the
	// expected prior status and fail with ErrStale when it has moved on.
	GetPendingDeletionRequest(ctx context.Context, evidenceID, userID int64) (*model.DeletionRequest, error)
	GetDeletionRequestByEvidence(ctx context.Context, evidenceID int64) (*model.DeletionRequest, error)
	CreateDeletionRequest(ctx context.Context, r *model.DeletionRequest) error
	UpdateDeletionRequestStatus(ctx context.Context, evidenceID, userID int64, from, to string) error
	DeleteDeletionRequest(ctx context.Context, evidenceID, userID int64, expectStatus string) error

	// Audit log (append-only)
	CreateAuditLog(ctx context.Context, entry *model.AuditLog) error
	GetAuditLogByEvidenceAction(ctx context.Context, evidenceID int64, action string) (*model.AuditLog, error)
	ListAuditLogsByEvidenceIDs(ctx context.Context, evidenceIDs []int64) ([]*model.AuditLog, error)

	// Reports
	CreateReport(ctx context.Context, r *model.Report) error
	GetReportByID(ctx context.Context, id int64) (*model.Report, error)
	LinkReportsToCase(ctx context.Context, reportIDs []int64, caseID int64) error

	// Persons
	CreatePerson(ctx context.Context, p *model.Person) error
	UpdatePersonFields(ctx context.Context, id int64, fields map[string]interface{}) (*model.Person, error)
	ListCasePersons(ctx context.Context, caseID int64, personType string) ([]*model.Person, error)

	// Comments
	CreateComment(ctx context.Context, c *model.Comment) error
	ListCaseComments(ctx context.Context, caseID int64) ([]*model.Comment, error)
	DeleteComment(ctx context.Context, caseID, commentID int64) error

	// Initialize indexes
	EnsureIndexes(ctx context.Context) error
}
