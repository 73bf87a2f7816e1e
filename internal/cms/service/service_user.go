package service

import (
	"context"
	"errors"
	"fmt"

	"casetrack/internal/cms/model"
	"casetrack/internal/cms/repository"
	"casetrack/internal/cms/util"

	"golang.org/x/crypto/bcrypt"
)

// Authenticate resolves a staff identity from basic-auth credentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: cannot find user with email: %s", ErrUnauthorized, email)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid password", ErrUnauthorized)
	}

	return user, nil
}

// CreateUser registers a staff member. Only administrators reach this.
func (s *Service) CreateUser(ctx context.Context, req model.CreateUserReq) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         req.Role,
		Clearance:    req.Clearance,
	}

	if err := s.Repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: a user with email %s already exists", ErrConflict, req.Email)
		}
		return nil, err
	}

	util.GetLogger().Info("user created", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// UpdateUser applies a partial update; role and clearance changes are an
// administrative act.
func (s *Service) UpdateUser(ctx context.Context, userID int64, req model.UpdateUserReq) (*model.User, error) {
	fields := map[string]interface{}{}
	if req.Email != "" {
		fields["email"] = req.Email
	}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Role != "" {
		fields["role"] = req.Role
	}
	if req.Clearance != "" {
		fields["clearance"] = req.Clearance
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		fields["password_hash"] = string(hash)
	}

	user, err := s.Repo.UpdateUserFields(ctx, userID, fields)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: user with id %d not found", ErrNotFound, userID)
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: a user with email %s already exists", ErrConflict, req.Email)
		}
		return nil, err
	}

	util.GetLogger().Info("user updated", "user_id", userID)
	return user, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.Repo.ListUsers(ctx)
}
