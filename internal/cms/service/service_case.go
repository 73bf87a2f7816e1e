package service

import (
	"context"

	"casetrack/internal/cms/model"
	"casetrack/internal/cms/util"
)

// CreateCase opens a case, optionally linking submitted citizen reports.
func (s *Service) CreateCase(ctx context.Context, creatorID int64, req model.CreateCaseReq) (*model.Case, error) {
	c := &model.Case{
		CaseName:    req.CaseName,
		Description: req.Description,
		Area:        req.Area,
		City:        req.City,
		Type:        req.Type,
		Clearance:   req.Clearance,
		Status:      req.Status,
		CreatedBy:   creatorID,
	}

	if err := s.Repo.CreateCase(ctx, c); err != nil {
		return nil, err
	}

	if len(req.ReportIDs) > 0 {
		if err := s.Repo.LinkReportsToCase(ctx, req.ReportIDs, c.ID); err != nil {
			return nil, err
		}
	}

	util.GetLogger().Info("case created", "case_id", c.ID, "clearance", c.Clearance, "created_by", creatorID)
	return c, nil
}

// UpdateCase applies a partial update and optionally links further reports.
func (s *Service) UpdateCase(ctx context.Context, caseID int64, req model.UpdateCaseReq) (*model.Case, error) {
	if _, err := s.getCase(ctx, caseID); err != nil {
		return nil, err
	}

	if req.HasCaseFields() {
		fields := map[string]interface{}{}
		if req.CaseName != "" {
			fields["case_name"] = req.CaseName
		}
		if req.Description != "" {
			fields["description"] = req.Description
		}
		if req.Area != "" {
			fields["area"] = req.Area
		}
		if req.City != "" {
			fields["city"] = req.City
		}
		if req.Type != "" {
			fields["type"] = req.Type
		}
		if req.Clearance != "" {
			fields["clearance"] = req.Clearance
		}
		if req.Status != "" {
			fields["status"] = req.Status
		}
		if _, err := s.Repo.UpdateCaseFields(ctx, caseID, fields); err != nil {
			return nil, err
		}
	}

	if len(req.ReportIDs) > 0 {
		if err := s.Repo.LinkReportsToCase(ctx, req.ReportIDs, caseID); err != nil {
			return nil, err
		}
	}

	return s.getCase(ctx, caseID)
}

// UpdateCaseStatus is the status-only patch open to assigned officers as well.
func (s *Service) UpdateCaseStatus(ctx context.Context, actor *model.User, caseID int64, req model.UpdateCaseStatusReq) error {
	if _, err := s.getCase(ctx, caseID); err != nil {
		return err
	}

	if err := s.requireCaseAccess(ctx, actor, caseID); err != nil {
		return err
	}

	if _, err := s.Repo.UpdateCaseFields(ctx, caseID, map[string]interface{}{"status": req.Status}); err != nil {
		return err
	}

	util.GetLogger().Info("case status updated", "case_id", caseID, "status", req.Status, "user_id", actor.ID)
	return nil
}
