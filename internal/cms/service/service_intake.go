package service

import (
	"context"
	"errors"
	"fmt"

	"casetrack/internal/cms/model"
	"casetrack/internal/cms/repository"
	"casetrack/internal/cms/util"
)

// SubmitReport records a citizen crime report and returns its id. This is the
// one unauthenticated write in the system.
func (s *Service) SubmitReport(ctx context.Context, req model.CreateReportReq) (int64, error) {
	report := &model.Report{
		Email:       req.Email,
		CivilID:     req.CivilID,
		Name:        req.Name,
		Description: req.Description,
		Area:        req.Area,
		City:        req.City,
	}
	if err := s.Repo.CreateReport(ctx, report); err != nil {
		return 0, err
	}

	util.GetLogger().Info("report submitted", "report_id", report.ID, "city", report.City)
	return report.ID, nil
}

func (s *Service) GetReport(ctx context.Context, reportID int64) (*model.Report, error) {
	report, err := s.Repo.GetReportByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: report not found", ErrNotFound)
		}
		return nil, err
	}
	return report, nil
}

// CreatePerson attaches a suspect, victim or witness to a case.
func (s *Service) CreatePerson(ctx context.Context, actor *model.User, caseID int64, req model.CreatePersonReq) (*model.Person, error) {
	if _, err := s.getCase(ctx, caseID); err != nil {
		return nil, err
	}
	if err := s.requireCaseAccess(ctx, actor, caseID); err != nil {
		return nil, err
	}

	person := &model.Person{
		CaseID: caseID,
		Type:   req.Type,
		Name:   req.Name,
		Age:    req.Age,
		Gender: req.Gender,
		Role:   req.Role,
	}
	if err := s.Repo.CreatePerson(ctx, person); err != nil {
		return nil, err
	}
	return person, nil
}

// UpdatePerson edits a person's record. The route restricts this to admins
// and investigators, so no assignment check applies here.
func (s *Service) UpdatePerson(ctx context.Context, personID int64, req model.UpdatePersonReq) (*model.Person, error) {
	fields := map[string]interface{}{}
	if req.Type != "" {
		fields["type"] = req.Type
	}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Age != nil {
		fields["age"] = *req.Age
	}
	if req.Gender != "" {
		fields["gender"] = req.Gender
	}
	if req.Role != "" {
		fields["role"] = req.Role
	}

	updated, err := s.Repo.UpdatePersonFields(ctx, personID, fields)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: person with id %d not found", ErrNotFound, personID)
		}
		return nil, err
	}
	return updated, nil
}

func (s *Service) ListCasePersons(ctx context.Context, actor *model.User, caseID int64, personType string) ([]*model.Person, error) {
	if _, err := s.getCase(ctx, caseID); err != nil {
		return nil, err
	}
	if err := s.requireCaseAccess(ctx, actor, caseID); err != nil {
		return nil, err
	}
	return s.Repo.ListCasePersons(ctx, caseID, personType)
}

// CreateComment adds a staff note to a case. The per-user rate limit is
// enforced at the route.
func (s *Service) CreateComment(ctx context.Context, actor *model.User, caseID int64, req model.CreateCommentReq) (*model.Comment, error) {
	if _, err := s.getCase(ctx, caseID); err != nil {
		return nil, err
	}
	if err := s.requireCaseAccess(ctx, actor, caseID); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		CaseID:  caseID,
		UserID:  actor.ID,
		Content: req.Content,
	}
	if err := s.Repo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListCaseComments returns a case's comments, newest first.
func (s *Service) ListCaseComments(ctx context.Context, actor *model.User, caseID int64) ([]*model.Comment, error) {
	if _, err := s.getCase(ctx, caseID); err != nil {
		return nil, err
	}
	if err := s.requireCaseAccess(ctx, actor, caseID); err != nil {
		return nil, err
	}
	return s.Repo.ListCaseComments(ctx, caseID)
}

// DeleteComment removes a comment from a case. The route restricts this to
// admins and investigators.
func (s *Service) DeleteComment(ctx context.Context, caseID, commentID int64) error {
	if _, err := s.getCase(ctx, caseID); err != nil {
		return err
	}

	if err := s.Repo.DeleteComment(ctx, caseID, commentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: comment not found", ErrNotFound)
		}
		return err
	}

	util.GetLogger().Info("comment deleted", "case_id", caseID, "comment_id", commentID)
	return nil
}
