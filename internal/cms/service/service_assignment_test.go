package service

import (
	"context"
	"testing"

	"casetrack/internal/cms/model"
	"casetrack/internal/cms/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func userFixture(id int64, role, clearance string) *model.User {
	return &model.User{
		ID:        id,
		Name:      "Test User",
		Email:     "user@agency.gov",
		Role:      role,
		Clearance: clearance,
	}
}

func caseFixture(id int64, clearance string) *model.Case {
	return &model.Case{
		ID:        id,
		CaseName:  "Burglary on 5th",
		Status:    model.CaseStatusOngoing,
		Clearance: clearance,
	}
}

func TestAssignUser(t *testing.T) {
	ctx := context.Background()

	t.Run("officer with matching clearance is assigned", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetUserByID", mock.Anything, int64(7)).Return(userFixture(7, model.RoleOfficer, model.ClearanceHigh), nil)
		mockRepo.On("GetCaseByID", mock.Anything, int64(3)).Return(caseFixture(3, model.ClearanceHigh), nil)
		mockRepo.On("GetAssignment", mock.Anything, int64(3), int64(7)).Return(nil, repository.ErrNotFound)
		mockRepo.On("CreateAssignment", mock.Anything, mock.MatchedBy(func(a *model.CaseAssignment) bool {
			return a.CaseID == 3 && a.UserID == 7
		})).Return(nil)

		err := svc.AssignUser(ctx, 3, 7)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("higher clearance than the case is also accepted", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetUserByID", mock.Anything, int64(7)).Return(userFixture(7, model.RoleOfficer, model.ClearanceCritical), nil)
		mockRepo.On("GetCaseByID", mock.Anything, int64(3)).Return(caseFixture(3, model.ClearanceLow), nil)
		mockRepo.On("GetAssignment", mock.Anything, int64(3), int64(7)).Return(nil, repository.ErrNotFound)
		mockRepo.On("CreateAssignment", mock.Anything, mock.Anything).Return(nil)

		err := svc.AssignUser(ctx, 3, 7)
		assert.NoError(t, err)
	})

	t.Run("officer below the case clearance is rejected with both values named", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetUserByID", mock.Anything, int64(7)).Return(userFixture(7, model.RoleOfficer, model.ClearanceLow), nil)
		mockRepo.On("GetCaseByID", mock.Anything, int64(3)).Return(caseFixture(3, model.ClearanceHigh), nil)

		err := svc.AssignUser(ctx, 3, 7)
		assert.ErrorIs(t, err, ErrForbidden)
		assert.Contains(t, err.Error(), "officer clearance (low) does not meet the case clearance (high)")
		mockRepo.AssertNotCalled(t, "CreateAssignment", mock.Anything, mock.Anything)
	})

	t.Run("auditor is assigned without a clearance check", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetUserByID", mock.Anything, int64(9)).Return(userFixture(9, model.RoleAuditor, ""), nil)
		mockRepo.On("GetCaseByID", mock.Anything, int64(3)).Return(caseFixture(3, model.ClearanceCritical), nil)
		mockRepo.On("GetAssignment", mock.Anything, int64(3), int64(9)).Return(nil, repository.ErrNotFound)
		mockRepo.On("CreateAssignment", mock.Anything, mock.Anything).Return(nil)

		err := svc.AssignUser(ctx, 3, 9)
		assert.NoError(t, err)
	})

	t.Run("admins and investigators are not assignable", func(t *testing.T) {
		for _, role := range []string{model.RoleAdmin, model.RoleInvestigator} {
			mockRepo := new(MockRepository)
			svc := NewService(mockRepo)

			mockRepo.On("GetUserByID", mock.Anything, int64(5)).Return(userFixture(5, role, ""), nil)
			mockRepo.On("GetCaseByID", mock.Anything, int64(3)).Return(caseFixture(3, model.ClearanceLow), nil)

			err := svc.AssignUser(ctx, 3, 5)
			assert.ErrorIs(t, err, ErrForbidden)
			mockRepo.AssertNotCalled(t, "CreateAssignment", mock.Anything, mock.Anything)
		}
	})

	t.Run("officer without a clearance is always insufficient", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetUserByID", mock.Anything, int64(7)).Return(userFixture(7, model.RoleOfficer, ""), nil)
		mockRepo.On("GetCaseByID", mock.Anything, int64(3)).Return(caseFixture(3, model.ClearanceLow), nil)

		err := svc.AssignUser(ctx, 3, 7)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("duplicate assignment is a conflict", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetUserByID", mock.Anything, int64(7)).Return(userFixture(7, model.RoleOfficer, model.ClearanceHigh), nil)
		mockRepo.On("GetCaseByID", mock.Anything, int64(3)).Return(caseFixture(3, model.ClearanceHigh), nil)
		mockRepo.On("GetAssignment", mock.Anything, int64(3), int64(7)).
			Return(&model.CaseAssignment{CaseID: 3, UserID: 7}, nil)

		err := svc.AssignUser(ctx, 3, 7)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("racing duplicate insert still surfaces as a conflict", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetUserByID", mock.Anything, int64(7)).Return(userFixture(7, model.RoleOfficer, model.ClearanceHigh), nil)
		mockRepo.On("GetCaseByID", mock.Anything, int64(3)).Return(caseFixture(3, model.ClearanceHigh), nil)
		mockRepo.On("GetAssignment", mock.Anything, int64(3), int64(7)).Return(nil, repository.ErrNotFound)
		mockRepo.On("CreateAssignment", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

		err := svc.AssignUser(ctx, 3, 7)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("missing user or case surfaces as not found", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetUserByID", mock.Anything, int64(99)).Return(nil, repository.ErrNotFound)

		err := svc.AssignUser(ctx, 3, 99)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUnassignUser(t *testing.T) {
	ctx := context.Background()

	t.Run("removes an existing assignment", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("DeleteAssignment", mock.Anything, int64(3), int64(7)).Return(nil)

		err := svc.UnassignUser(ctx, 3, 7)
		assert.NoError(t, err)
	})

	t.Run("missing assignment is not found", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("DeleteAssignment", mock.Anything, int64(3), int64(7)).Return(repository.ErrNotFound)

		err := svc.UnassignUser(ctx, 3, 7)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
