package handler

import (
	"context"
	"time"

	"casetrack/internal/cms/model"

	"github.com/stretchr/testify/mock"
)

// MockCaseService is a mock implementation of service.CaseService for testing.
type MockCaseService struct {
	mock.Mock
}

func (m *MockCaseService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockCaseService) CreateUser(ctx context.Context, req model.CreateUserReq) (*model.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockCaseService) UpdateUser(ctx context.Context, userID int64, req model.UpdateUserReq) (*model.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockCaseService) ListUsers(ctx context.Context) ([]*model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *MockCaseService) CreateCase(ctx context.Context, creatorID int64, req model.CreateCaseReq) (*model.Case, error) {
	args := m.Called(ctx, creatorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Case), args.Error(1)
}

func (m *MockCaseService) UpdateCase(ctx context.Context, caseID int64, req model.UpdateCaseReq) (*model.Case, error) {
	args := m.Called(ctx, caseID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Case), args.Error(1)
}

func (m *MockCaseService) UpdateCaseStatus(ctx context.Context, actor *model.User, caseID int64, req model.UpdateCaseStatusReq) error {
	args := m.Called(ctx, actor, caseID, req)
	return args.Error(0)
}

func (m *MockCaseService) AssignUser(ctx context.Context, caseID, userID int64) error {
	args := m.Called(ctx, caseID, userID)
	return args.Error(0)
}

func (m *MockCaseService) UnassignUser(ctx context.Context, caseID, userID int64) error {
	args := m.Called(ctx, caseID, userID)
	return args.Error(0)
}

func (m *MockCaseService) CreateEvidence(ctx context.Context, actor *model.User, caseID int64, req model.CreateEvidenceReq) (*model.Evidence, error) {
	args := m.Called(ctx, actor, caseID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Evidence), args.Error(1)
}

func (m *MockCaseService) GetEvidence(ctx context.Context, actor *model.User, evidenceID int64) (*model.Evidence, error) {
	args := m.Called(ctx, actor, evidenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Evidence), args.Error(1)
}

func (m *MockCaseService) ListCaseEvidence(ctx context.Context, actor *model.User, caseID int64) ([]*model.Evidence, error) {
	args := m.Called(ctx, actor, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Evidence), args.Error(1)
}

func (m *MockCaseService) UpdateEvidence(ctx context.Context, actor *model.User, evidenceID int64, req model.UpdateEvidenceReq) (*model.Evidence, error) {
	args := m.Called(ctx, actor, evidenceID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Evidence), args.Error(1)
}

func (m *MockCaseService) SoftDeleteEvidence(ctx context.Context, actor *model.User, evidenceID int64) (*model.Evidence, error) {
	args := m.Called(ctx, actor, evidenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Evidence), args.Error(1)
}

func (m *MockCaseService) InitiateDeletion(ctx context.Context, evidenceID, userID int64) (string, error) {
	args := m.Called(ctx, evidenceID, userID)
	return args.String(0), args.Error(1)
}

func (m *MockCaseService) ConfirmDeletion(ctx context.Context, evidenceID, userID int64, token string) (string, error) {
	args := m.Called(ctx, evidenceID, userID, token)
	return args.String(0), args.Error(1)
}

func (m *MockCaseService) FinalizeDeletion(ctx context.Context, evidenceID, userID int64) (string, error) {
	args := m.Called(ctx, evidenceID, userID)
	return args.String(0), args.Error(1)
}

func (m *MockCaseService) ObserveDeletionStatus(ctx context.Context, evidenceID int64) (*model.DeletionStatusResponse, error) {
	args := m.Called(ctx, evidenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DeletionStatusResponse), args.Error(1)
}

func (m *MockCaseService) PollDeletionStatus(ctx context.Context, evidenceID int64, interval, timeout time.Duration) (*model.DeletionStatusResponse, error) {
	args := m.Called(ctx, evidenceID, interval, timeout)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DeletionStatusResponse), args.Error(1)
}

func (m *MockCaseService) ListCaseAuditLogs(ctx context.Context, caseID int64) ([]*model.AuditLog, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AuditLog), args.Error(1)
}

func (m *MockCaseService) SubmitReport(ctx context.Context, req model.CreateReportReq) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCaseService) GetReport(ctx context.Context, reportID int64) (*model.Report, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

func (m *MockCaseService) CreatePerson(ctx context.Context, actor *model.User, caseID int64, req model.CreatePersonReq) (*model.Person, error) {
	args := m.Called(ctx, actor, caseID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Person), args.Error(1)
}

func (m *MockCaseService) UpdatePerson(ctx context.Context, personID int64, req model.UpdatePersonReq) (*model.Person, error) {
	args := m.Called(ctx, personID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Person), args.Error(1)
}

func (m *MockCaseService) ListCasePersons(ctx context.Context, actor *model.User, caseID int64, personType string) ([]*model.Person, error) {
	args := m.Called(ctx, actor, caseID, personType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Person), args.Error(1)
}

func (m *MockCaseService) CreateComment(ctx context.Context, actor *model.User, caseID int64, req model.CreateCommentReq) (*model.Comment, error) {
	args := m.Called(ctx, actor, caseID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCaseService) ListCaseComments(ctx context.Context, actor *model.User, caseID int64) ([]*model.Comment, error) {
	args := m.Called(ctx, actor, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Comment), args.Error(1)
}

func (m *MockCaseService) DeleteComment(ctx context.Context, caseID, commentID int64) error {
	args := m.Called(ctx, caseID, commentID)
	return args.Error(0)
}
