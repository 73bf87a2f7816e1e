package service

import (
	"context"

	"casetrack/internal/cms/model"
)

// ListCaseAuditLogs returns the audit trail for a case's evidence, oldest
// first. The projection goes through the evidence ids still attached to the
// case; audit rows for already hard-deleted evidence keep their evidence id
// but no longer resolve to a case and are only reachable by id.
func (s *Service) ListCaseAuditLogs(ctx context.Context, caseID int64) ([]*model.AuditLog, error) {
	if _, err := s.getCase(ctx, caseID); err != nil {
		return nil, err
	}

	evidenceIDs, err := s.Repo.ListCaseEvidenceIDs(ctx, caseID)
	if err != nil {
		return nil, err
	}

	return s.Repo.ListAuditLogsByEvidenceIDs(ctx, evidenceIDs)
}
