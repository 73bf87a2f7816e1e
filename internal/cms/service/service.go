package service

import (
	"context"
	"errors"
	"time"

	"casetrack/internal/cms/model"
	"casetrack/internal/cms/repository"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrBadRequest   = errors.New("bad request")
	// ErrInternal guards state-machine branches that correct operation never
	// reaches. Hitting one is a bug, not an expected outcome.
	ErrInternal = errors.New("internal error")
)

// CaseService is the operation surface exposed to the handlers.
type CaseService interface {
	// Identity
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
	CreateUser(ctx context.Context, req model.CreateUserReq) (*model.User, error)
	UpdateUser(ctx context.Context, userID int64, req model.UpdateUserReq) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)

	// Cases
	CreateCase(ctx context.Context, creatorID int64, req model.CreateCaseReq) (*model.Case, error)
	UpdateCase(ctx context.Context, caseID int64, req model.UpdateCaseReq) (*model.Case, error)
	UpdateCaseStatus(ctx context.Context, actor *model.User, caseID int64, req model.UpdateCaseStatusReq) error

	// Assignments
	AssignUser(ctx context.Context, caseID, userID int64) error
	UnassignUser(ctx context.Context, caseID, userID int64) error

	// Evidence
	CreateEvidence(ctx context.Context, actor *model.User, caseID int64, req model.CreateEvidenceReq) (*model.Evidence, error)
	GetEvidence(ctx context.Context, actor *model.User, evidenceID int64) (*model.Evidence, error)
	ListCaseEvidence(ctx context.Context, actor *model.User, caseID int64) ([]*model.Evidence, error)
	UpdateEvidence(ctx context.Context, actor *model.User, evidenceID int64, req model.UpdateEvidenceReq) (*model.Evidence, error)
	SoftDeleteEvidence(ctx context.Context, actor *model.User, evidenceID int64) (*model.Evidence, error)

	// Evidence hard-delete workflow
	InitiateDeletion(ctx context.Context, evidenceID, userID int64) (string, error)
	ConfirmDeletion(ctx context.Context, evidenceID, userID int64, token string) (string, error)
	FinalizeDeletion(ctx context.Context, evidenceID, userID int64) (string, error)
	ObserveDeletionStatus(ctx context.Context, evidenceID int64) (*model.DeletionStatusResponse, error)
	PollDeletionStatus(ctx context.Context, evidenceID int64, interval, timeout time.Duration) (*model.DeletionStatusResponse, error)

	// Audit trail
	ListCaseAuditLogs(ctx context.Context, caseID int64) ([]*model.AuditLog, error)

	// Citizen reports
	SubmitReport(ctx context.Context, req model.CreateReportReq) (int64, error)
	GetReport(ctx context.Context, reportID int64) (*model.Report, error)

	// Persons
	CreatePerson(ctx context.Context, actor *model.User, caseID int64, req model.CreatePersonReq) (*model.Person, error)
	UpdatePerson(ctx context.Context, personID int64, req model.UpdatePersonReq) (*model.Person, error)
	ListCasePersons(ctx context.Context, actor *model.User, caseID int64, personType string) ([]*model.Person, error)

	// Comments
	CreateComment(ctx context.Context, actor *model.User, caseID int64, req model.CreateCommentReq) (*model.Comment, error)
	ListCaseComments(ctx context.Context, actor *model.User, caseID int64) ([]*model.Comment, error)
	DeleteComment(ctx context.Context, caseID, commentID int64) error
}

type Service struct {
	Repo repository.Repository
}

func NewService(repo repository.Repository) *Service {
	return &Service{Repo: repo}
}
