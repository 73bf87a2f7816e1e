package service

import (
	"context"
	"errors"
	"fmt"

	"casetrack/internal/cms/model"
	"casetrack/internal/cms/repository"
)

// requireCaseAccess enforces the assignment rule for officers: an officer may
// only touch cases they are assigned to. Other staff roles pass through, their
// access is settled by the route-level role guard.
func (s *Service) requireCaseAccess(ctx context.Context, actor *model.User, caseID int64) error {
	if actor.Role != model.RoleOfficer {
		return nil
	}

	_, err := s.Repo.GetAssignment(ctx, caseID, actor.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: you are not assigned to this case", ErrForbidden)
		}
		return err
	}
	return nil
}

// requireEvidenceAccess resolves the evidence row and applies the officer
// assignment rule against its owning case. Soft-deleted rows are invisible.
func (s *Service) requireEvidenceAccess(ctx context.Context, actor *model.User, evidenceID int64) (*model.Evidence, error) {
	evidence, err := s.Repo.GetEvidenceByID(ctx, evidenceID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: evidence ID: %d not found", ErrNotFound, evidenceID)
		}
		return nil, err
	}
	if evidence.Deleted {
		return nil, fmt.Errorf("%w: evidence ID: %d not found", ErrNotFound, evidenceID)
	}

	if err := s.requireCaseAccess(ctx, actor, evidence.CaseID); err != nil {
		return nil, err
	}
	return evidence, nil
}

// getCase maps a missing case row to the service-level NotFound.
func (s *Service) getCase(ctx context.Context, caseID int64) (*model.Case, error) {
	c, err := s.Repo.GetCaseByID(ctx, caseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: case with id %d not found", ErrNotFound, caseID)
		}
		return nil, err
	}
	return c, nil
}
