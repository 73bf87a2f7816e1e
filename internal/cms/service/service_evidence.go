package service

import (
	"context"
	"errors"
	"fmt"

	"casetrack/internal/cms/model"
	"casetrack/internal/cms/repository"
	"casetrack/internal/cms/util"
)

// CreateEvidence attaches evidence to a case. Officers must be assigned.
func (s *Service) CreateEvidence(ctx context.Context, actor *model.User, caseID int64, req model.CreateEvidenceReq) (*model.Evidence, error) {
	if _, err := s.getCase(ctx, caseID); err != nil {
		return nil, err
	}
	if err := s.requireCaseAccess(ctx, actor, caseID); err != nil {
		return nil, err
	}

	evidence := &model.Evidence{
		CaseID:  caseID,
		Type:    req.Type,
		Content: req.Content,
		Remarks: req.Remarks,
		Deleted: false,
	}
	if err := s.Repo.CreateEvidence(ctx, evidence); err != nil {
		return nil, err
	}

	util.GetLogger().Info("evidence created", "evidence_id", evidence.ID, "case_id", caseID, "type", evidence.Type, "user_id", actor.ID)
	return evidence, nil
}

// GetEvidence returns a single piece of evidence, hiding soft-deleted rows.
func (s *Service) GetEvidence(ctx context.Context, actor *model.User, evidenceID int64) (*model.Evidence, error) {
	return s.requireEvidenceAccess(ctx, actor, evidenceID)
}

// ListCaseEvidence lists a case's non-deleted evidence.
func (s *Service) ListCaseEvidence(ctx context.Context, actor *model.User, caseID int64) ([]*model.Evidence, error) {
	if _, err := s.getCase(ctx, caseID); err != nil {
		return nil, err
	}
	if err := s.requireCaseAccess(ctx, actor, caseID); err != nil {
		return nil, err
	}
	return s.Repo.ListCaseEvidence(ctx, caseID)
}

// UpdateEvidence is the explicit update endpoint: content and remarks only.
func (s *Service) UpdateEvidence(ctx context.Context, actor *model.User, evidenceID int64, req model.UpdateEvidenceReq) (*model.Evidence, error) {
	evidence, err := s.requireEvidenceAccess(ctx, actor, evidenceID)
	if err != nil {
		return nil, err
	}

	if req.Content != "" && evidence.Type == model.EvidenceTypeImage {
		check := model.CreateEvidenceReq{Type: model.EvidenceTypeImage, Content: req.Content}
		if err := check.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrBadRequest, err.Error())
		}
	}

	fields := map[string]interface{}{}
	if req.Content != "" {
		fields["content"] = req.Content
	}
	if req.Remarks != "" {
		fields["remarks"] = req.Remarks
	}

	updated, err := s.Repo.UpdateEvidenceFields(ctx, evidenceID, fields)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: evidence ID: %d not found", ErrNotFound, evidenceID)
		}
		return nil, err
	}

	util.GetLogger().Info("evidence updated", "evidence_id", evidenceID, "user_id", actor.ID)
	return updated, nil
}

// SoftDeleteEvidence hides evidence without removing the row. Irreversible
// removal goes through the hard-delete workflow instead.
func (s *Service) SoftDeleteEvidence(ctx context.Context, actor *model.User, evidenceID int64) (*model.Evidence, error) {
	if _, err := s.requireEvidenceAccess(ctx, actor, evidenceID); err != nil {
		return nil, err
	}

	evidence, err := s.Repo.SoftDeleteEvidence(ctx, evidenceID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: evidence not found or already deleted", ErrNotFound)
		}
		return nil, err
	}

	util.GetLogger().Info("evidence soft-deleted", "evidence_id", evidenceID, "user_id", actor.ID)
	return evidence, nil
}
