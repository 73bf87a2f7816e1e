package service

import (
	"context"

	"casetrack/internal/cms/model"

	"github.com/stretchr/testify/mock"
)

// MockRepository is a shared mock implementation of repository.Repository for testing.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockRepository) CreateUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockRepository) UpdateUserFields(ctx context.Context, id int64, fields map[string]interface{}) (*model.User, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockRepository) ListUsers(ctx context.Context) ([]*model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *MockRepository) GetCaseByID(ctx context.Context, id int64) (*model.Case, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Case), args.Error(1)
}

func (m *MockRepository) CreateCase(ctx context.Context, c *model.Case) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockRepository) UpdateCaseFields(ctx context.Context, id int64, fields map[string]interface{}) (*model.Case, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Case), args.Error(1)
}

func (m *MockRepository) GetAssignment(ctx context.Context, caseID, userID int64) (*model.CaseAssignment, error) {
	args := m.Called(ctx, caseID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CaseAssignment), args.Error(1)
}

func (m *MockRepository) CreateAssignment(ctx context.Context, a *model.CaseAssignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockRepository) DeleteAssignment(ctx context.Context, caseID, userID int64) error {
	args := m.Called(ctx, caseID, userID)
	return args.Error(0)
}

func (m *MockRepository) GetEvidenceByID(ctx context.Context, id int64) (*model.Evidence, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Evidence), args.Error(1)
}

func (m *MockRepository) ListCaseEvidence(ctx context.Context, caseID int64) ([]*model.Evidence, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Evidence), args.Error(1)
}

func (m *MockRepository) ListCaseEvidenceIDs(ctx context.Context, caseID int64) ([]int64, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockRepository) CreateEvidence(ctx context.Context, e *model.Evidence) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockRepository) UpdateEvidenceFields(ctx context.Context, id int64, fields map[string]interface{}) (*model.Evidence, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Evidence), args.Error(1)
}

func (m *MockRepository) SoftDeleteEvidence(ctx context.Context, id int64) (*model.Evidence, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Evidence), args.Error(1)
}

func (m *MockRepository) DeleteEvidence(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) GetPendingDeletionRequest(ctx context.Context, evidenceID, userID int64) (*model.DeletionRequest, error) {
	args := m.Called(ctx, evidenceID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DeletionRequest), args.Error(1)
}

func (m *MockRepository) GetDeletionRequestByEvidence(ctx context.Context, evidenceID int64) (*model.DeletionRequest, error) {
	args := m.Called(ctx, evidenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DeletionRequest), args.Error(1)
}

func (m *MockRepository) CreateDeletionRequest(ctx context.Context, r *model.DeletionRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRepository) UpdateDeletionRequestStatus(ctx context.Context, evidenceID, userID int64, from, to string) error {
	args := m.Called(ctx, evidenceID, userID, from, to)
	return args.Error(0)
}

func (m *MockRepository) DeleteDeletionRequest(ctx context.Context, evidenceID, userID int64, expectStatus string) error {
	args := m.Called(ctx, evidenceID, userID, expectStatus)
	return args.Error(0)
}

func (m *MockRepository) CreateAuditLog(ctx context.Context, entry *model.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockRepository) GetAuditLogByEvidenceAction(ctx context.Context, evidenceID int64, action string) (*model.AuditLog, error) {
	args := m.Called(ctx, evidenceID, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuditLog), args.Error(1)
}

func (m *MockRepository) ListAuditLogsByEvidenceIDs(ctx context.Context, evidenceIDs []int64) ([]*model.AuditLog, error) {
	args := m.Called(ctx, evidenceIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AuditLog), args.Error(1)
}

func (m *MockRepository) CreateReport(ctx context.Context, r *model.Report) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRepository) GetReportByID(ctx context.Context, id int64) (*model.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

func (m *MockRepository) LinkReportsToCase(ctx context.Context, reportIDs []int64, caseID int64) error {
	args := m.Called(ctx, reportIDs, caseID)
	return args.Error(0)
}

func (m *MockRepository) CreatePerson(ctx context.Context, p *model.Person) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRepository) UpdatePersonFields(ctx context.Context, id int64, fields map[string]interface{}) (*model.Person, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Person), args.Error(1)
}

func (m *MockRepository) ListCasePersons(ctx context.Context, caseID int64, personType string) ([]*model.Person, error) {
	args := m.Called(ctx, caseID, personType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Person), args.Error(1)
}

func (m *MockRepository) CreateComment(ctx context.Context, c *model.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockRepository) ListCaseComments(ctx context.Context, caseID int64) ([]*model.Comment, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Comment), args.Error(1)
}

func (m *MockRepository) DeleteComment(ctx context.Context, caseID, commentID int64) error {
	args := m.Called(ctx, caseID, commentID)
	return args.Error(0)
}

func (m *MockRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
