package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"casetrack/internal/cms/metrics"
	"casetrack/internal/cms/model"
	"casetrack/internal/cms/repository"
	"casetrack/internal/cms/util"
)

// The evidence hard-delete workflow is a per-(evidence, user) state machine:
//
//	absent -> initiated -> confirmed -> finalized (row removed, audit written)
//
// A non-"yes" confirmation cancels from initiated by removing the row, so a
// later initiate starts a fresh cycle. Every transition re-reads the current
// status and advances with a conditional write; a write that matches nothing
// means a concurrent caller got there first and is reported, never absorbed.

// getEvidenceForDeletion resolves the evidence row without the soft-delete
// filter: hard deletion also applies to soft-deleted evidence.
func (s *Service) getEvidenceForDeletion(ctx context.Context, evidenceID int64) (*model.Evidence, error) {
	evidence, err := s.Repo.GetEvidenceByID(ctx, evidenceID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: evidence ID: %d not found", ErrNotFound, evidenceID)
		}
		return nil, err
	}
	return evidence, nil
}

func deletionPrompt(evidenceID int64) string {
	return fmt.Sprintf("Are you sure you want to permanently delete Evidence ID: %d (yes/no)? "+
		"POST /cases/evidence/%d/confirm-hard-delete?query=yes to confirm. "+
		"Any value other than yes, including a missing query, will cancel the deletion.", evidenceID, evidenceID)
}

func alreadyConfirmedMessage(evidenceID int64) string {
	return fmt.Sprintf("Deletion of Evidence ID: %d has already been confirmed. "+
		"To finalize the deletion, send DELETE /cases/evidence/%d.", evidenceID, evidenceID)
}

func noPendingRequestError(evidenceID int64) error {
	return fmt.Errorf("%w: deletion request for Evidence ID: %d not found; initiate the deletion first "+
		"by sending POST /cases/evidence/%d/initiate-hard-delete", ErrNotFound, evidenceID, evidenceID)
}

func (s *Service) unexpectedStatus(evidenceID, userID int64, status string) error {
	util.GetLogger().Error("deletion request in unexpected status",
		"evidence_id", evidenceID,
		"user_id", userID,
		"status", status,
	)
	return fmt.Errorf("%w: unexpected status for deletion request", ErrInternal)
}

// InitiateDeletion starts (or re-prompts) the workflow for the pair.
func (s *Service) InitiateDeletion(ctx context.Context, evidenceID, userID int64) (string, error) {
	if _, err := s.getEvidenceForDeletion(ctx, evidenceID); err != nil {
		return "", err
	}

	request, err := s.Repo.GetPendingDeletionRequest(ctx, evidenceID, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}

	if request == nil {
		err := s.Repo.CreateDeletionRequest(ctx, &model.DeletionRequest{
			EvidenceID: evidenceID,
			UserID:     userID,
			Status:     model.DeletionStatusInitiated,
		})
		if err != nil {
			// A concurrent initiate inserted the row between our read and
			// write. The workflow exists either way; fall through to the
			// same prompt rather than surfacing the race.
			if !errors.Is(err, repository.ErrDuplicate) {
				return "", err
			}
		}
		return deletionPrompt(evidenceID), nil
	}

	switch request.Status {
	case model.DeletionStatusInitiated:
		// Idempotent re-prompt; exactly one row persists.
		return deletionPrompt(evidenceID), nil
	case model.DeletionStatusConfirmed:
		return alreadyConfirmedMessage(evidenceID), nil
	default:
		return "", s.unexpectedStatus(evidenceID, userID, request.Status)
	}
}

// ConfirmDeletion is the decision point: exactly "yes" advances the request,
// anything else cancels it so a fresh initiate is required.
func (s *Service) ConfirmDeletion(ctx context.Context, evidenceID, userID int64, token string) (string, error) {
	if _, err := s.getEvidenceForDeletion(ctx, evidenceID); err != nil {
		return "", err
	}

	request, err := s.Repo.GetPendingDeletionRequest(ctx, evidenceID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", noPendingRequestError(evidenceID)
		}
		return "", err
	}

	switch request.Status {
	case model.DeletionStatusConfirmed:
		return alreadyConfirmedMessage(evidenceID), nil

	case model.DeletionStatusInitiated:
		if token != model.ConfirmToken {
			err := s.Repo.DeleteDeletionRequest(ctx, evidenceID, userID, model.DeletionStatusInitiated)
			if err != nil && !errors.Is(err, repository.ErrStale) {
				return "", err
			}
			metrics.DeletionsCanceled.Inc()
			// The token is arbitrary client input; log its length only.
			util.GetLogger().Info("deletion request canceled",
				"evidence_id", evidenceID, "user_id", userID, "token_length", len(token))
			return "", fmt.Errorf("%w: the deletion was canceled because the query value received was (%s); "+
				"only (yes) is accepted to confirm the deletion", ErrBadRequest, token)
		}

		err := s.Repo.UpdateDeletionRequestStatus(ctx, evidenceID, userID,
			model.DeletionStatusInitiated, model.DeletionStatusConfirmed)
		if err != nil {
			if errors.Is(err, repository.ErrStale) {
				// A concurrent confirm advanced or canceled the row. Re-read
				// to report the outcome that actually won.
				current, rerr := s.Repo.GetPendingDeletionRequest(ctx, evidenceID, userID)
				if rerr == nil && current.Status == model.DeletionStatusConfirmed {
					return alreadyConfirmedMessage(evidenceID), nil
				}
				return "", fmt.Errorf("%w: deletion request state changed concurrently; initiate again", ErrConflict)
			}
			return "", err
		}

		return fmt.Sprintf("Confirmation received. To finalize, send a DELETE request to /cases/evidence/%d.", evidenceID), nil

	default:
		return "", s.unexpectedStatus(evidenceID, userID, request.Status)
	}
}

// FinalizeDeletion performs the irreversible removal. The order is fixed:
// claim the request, write the audit entry, delete the evidence, drop the
// request row. The audit entry always precedes the evidence delete so a crash
// mid-way never destroys evidence without a trace; a crash before the claim
// leaves the workflow retryable from confirmed.
func (s *Service) FinalizeDeletion(ctx context.Context, evidenceID, userID int64) (string, error) {
	if _, err := s.getEvidenceForDeletion(ctx, evidenceID); err != nil {
		return "", err
	}

	request, err := s.Repo.GetPendingDeletionRequest(ctx, evidenceID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", noPendingRequestError(evidenceID)
		}
		return "", err
	}

	switch request.Status {
	case model.DeletionStatusInitiated:
		return "", fmt.Errorf("%w: deletion request for Evidence ID: %d has not been confirmed yet; "+
			"confirm the deletion first by sending POST /cases/evidence/%d/confirm-hard-delete?query=yes",
			ErrBadRequest, evidenceID, evidenceID)

	case model.DeletionStatusConfirmed:
		// Single-winner claim. Losing the swap means another finalize is
		// already past this point; the audit entry must not be written twice.
		err := s.Repo.UpdateDeletionRequestStatus(ctx, evidenceID, userID,
			model.DeletionStatusConfirmed, model.DeletionStatusFinalized)
		if err != nil {
			if errors.Is(err, repository.ErrStale) {
				return "", fmt.Errorf("%w: deletion already finalized by a concurrent request", ErrConflict)
			}
			return "", err
		}

		entry := &model.AuditLog{
			EvidenceID: evidenceID,
			UserID:     userID,
			Action:     model.ActionHardDelete,
			Timestamp:  time.Now().UTC(),
		}
		if err := s.Repo.CreateAuditLog(ctx, entry); err != nil {
			return "", err
		}

		if err := s.Repo.DeleteEvidence(ctx, evidenceID); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return "", err
		}

		err = s.Repo.DeleteDeletionRequest(ctx, evidenceID, userID, model.DeletionStatusFinalized)
		if err != nil && !errors.Is(err, repository.ErrStale) {
			return "", err
		}

		metrics.HardDeletesFinalized.Inc()
		util.GetLogger().Info("evidence hard-deleted", "evidence_id", evidenceID, "user_id", userID)
		return fmt.Sprintf("Evidence ID: %d has been permanently deleted.", evidenceID), nil

	default:
		return "", s.unexpectedStatus(evidenceID, userID, request.Status)
	}
}

// ObserveDeletionStatus is the read-only projection of the workflow state for
// an evidence id. It never mutates and reports the most specific knowable
// state, including the defensive "failed" for evidence that vanished without
// an audit trail.
func (s *Service) ObserveDeletionStatus(ctx context.Context, evidenceID int64) (*model.DeletionStatusResponse, error) {
	request, err := s.Repo.GetDeletionRequestByEvidence(ctx, evidenceID)
	if err == nil {
		switch request.Status {
		case model.DeletionStatusInitiated:
			return &model.DeletionStatusResponse{
				Status:  model.DeletionStatusInitiated,
				Message: fmt.Sprintf("Deletion request for Evidence ID: %d has been initiated but not yet confirmed.", evidenceID),
			}, nil
		case model.DeletionStatusConfirmed:
			return &model.DeletionStatusResponse{
				Status:  model.DeletionStatusConfirmed,
				Message: fmt.Sprintf("Deletion request for Evidence ID: %d has been confirmed but not yet finalized.", evidenceID),
			}, nil
		default:
			// A transient finalized row: the finalize that claimed it is
			// still running (or crashed). Report it as confirmed; the
			// terminal outcome is observable once the row is gone.
			return &model.DeletionStatusResponse{
				Status:  model.DeletionStatusConfirmed,
				Message: fmt.Sprintf("Deletion request for Evidence ID: %d is being finalized.", evidenceID),
			}, nil
		}
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	// No workflow row. If the evidence is gone too, the audit log decides
	// between a completed deletion and an inconsistency.
	_, err = s.Repo.GetEvidenceByID(ctx, evidenceID)
	if err == nil {
		return &model.DeletionStatusResponse{
			Status:  model.DeletionObservedNotFound,
			Message: fmt.Sprintf("No deletion request has been initiated for Evidence ID: %d.", evidenceID),
		}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	_, err = s.Repo.GetAuditLogByEvidenceAction(ctx, evidenceID, model.ActionHardDelete)
	if err == nil {
		return &model.DeletionStatusResponse{
			Status:  model.DeletionObservedFinalized,
			Message: fmt.Sprintf("Evidence ID: %d has been permanently deleted.", evidenceID),
		}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	// Evidence vanished with no audit trail. Finalize's ordering makes this
	// unreachable, but the read path reports it instead of crashing.
	util.GetLogger().Error("evidence missing without audit trail", "evidence_id", evidenceID)
	return &model.DeletionStatusResponse{
		Status:  model.DeletionObservedFailed,
		Message: fmt.Sprintf("Evidence ID: %d deletion failed.", evidenceID),
	}, nil
}

// PollDeletionStatus re-evaluates the status projection on a fixed interval,
// returning as soon as it differs from the first observation, or the last
// known status when the timeout elapses. Each tick is one short read; ctx
// cancellation stops the loop within one interval and produces no result.
func (s *Service) PollDeletionStatus(ctx context.Context, evidenceID int64, interval, timeout time.Duration) (*model.DeletionStatusResponse, error) {
	initial, err := s.ObserveDeletionStatus(ctx, evidenceID)
	if err != nil {
		return nil, err
	}
	if initial.Status == model.DeletionObservedNotFound {
		return nil, fmt.Errorf("%w: no deletion request has been initiated for Evidence ID: %d; "+
			"initiate a request before long polling for its status", ErrNotFound, evidenceID)
	}

	previous := initial

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline.C:
			return &model.DeletionStatusResponse{
				Status:  previous.Status,
				Message: fmt.Sprintf("The deletion status for Evidence ID: %d did not change within the timeout period.", evidenceID),
			}, nil
		case <-ticker.C:
			current, err := s.ObserveDeletionStatus(ctx, evidenceID)
			if err != nil {
				return nil, err
			}
			if current.Status != previous.Status {
				return current, nil
			}
			previous = current
		}
	}
}
