package service

import (
	"context"
	"errors"
	"fmt"

	"casetrack/internal/cms/model"
	"casetrack/internal/cms/policy"
	"casetrack/internal/cms/repository"
	"casetrack/internal/cms/util"
)

// AssignUser binds a user to a case. Only officers and auditors are eligible
// for case work, and officers must hold a clearance meeting the case's. The
// uniqueness of (case, user) is checked here and backstopped by the storage
// index, so a racing duplicate insert still surfaces as a conflict.
func (s *Service) AssignUser(ctx context.Context, caseID, userID int64) error {
	user, err := s.Repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: user with id %d not found", ErrNotFound, userID)
		}
		return err
	}

	caseData, err := s.getCase(ctx, caseID)
	if err != nil {
		return err
	}

	if user.Role != model.RoleOfficer && user.Role != model.RoleAuditor {
		return fmt.Errorf("%w: only officers and auditors can be assigned to cases; users with the role %s cannot be assigned", ErrForbidden, user.Role)
	}

	if user.Role == model.RoleOfficer {
		if !policy.ClearanceMeets(user.Clearance, caseData.Clearance) {
			// Both clearance values are named for operator diagnosis.
			return fmt.Errorf("%w: officer clearance (%s) does not meet the case clearance (%s)", ErrForbidden, user.Clearance, caseData.Clearance)
		}
	}

	if _, err := s.Repo.GetAssignment(ctx, caseID, userID); err == nil {
		return fmt.Errorf("%w: assignment already exists", ErrConflict)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	assignment := &model.CaseAssignment{
		CaseID: caseID,
		UserID: userID,
	}
	if err := s.Repo.CreateAssignment(ctx, assignment); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return fmt.Errorf("%w: assignment already exists", ErrConflict)
		}
		return err
	}

	util.GetLogger().Info("user assigned to case", "case_id", caseID, "user_id", userID, "role", user.Role)
	return nil
}

// UnassignUser removes an existing assignment.
func (s *Service) UnassignUser(ctx context.Context, caseID, userID int64) error {
	err := s.Repo.DeleteAssignment(ctx, caseID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: assignment not found", ErrNotFound)
		}
		return err
	}

	util.GetLogger().Info("user unassigned from case", "case_id", caseID, "user_id", userID)
	return nil
}
