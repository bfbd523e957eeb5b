package service

import (
	"context"
	"fmt"

	"golden9_club/internal/common"
	"golden9_club/internal/common/security"
	"golden9_club/internal/domain/model"
	"golden9_club/internal/domain/repository"

	"github.com/google/uuid"
)

// ScoreSync keeps the leaderboard ranking in step with point changes.
// Implementations must tolerate being skipped; the database stays the source
// of truth.
type ScoreSync interface {
	SetScore(ctx context.Context, user *model.User)
	RemoveScore(ctx context.Context, userID string)
}

type UserService struct {
	userRepo repository.UserRepository
	scores   ScoreSync
}

func NewUserService(userRepo repository.UserRepository, scores ScoreSync) *UserService {
	return &UserService{userRepo: userRepo, scores: scores}
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Points   int    `json:"points"`
	IsActive *bool  `json:"is_active"`
}

// UpdateUserRequest resupplies the full row. A non-empty password is rehashed;
// an empty one keeps the stored hash.
type UpdateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Points   int    `json:"points"`
	Password string `json:"password"`
	IsActive *bool  `json:"is_active"`
}

func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].HashedPassword = ""
	}
	return users, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.HashedPassword = ""
	return user, nil
}

func (s *UserService) CreateUser(ctx context.Context, req CreateUserRequest) (*model.User, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, common.ErrValidation
	}
	if req.Points < 0 {
		return nil, common.Errorf("points must be non-negative: %w", common.ErrValidation)
	}
	role := req.Role
	if role == "" {
		role = model.RoleUser
	}
	if !model.IsAdminRole(role) && !model.IsMemberRole(role) {
		return nil, common.Errorf("unknown role %q: %w", role, common.ErrValidation)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashedPassword,
		Role:           role,
		Points:         req.Points,
		IsActive:       isActive,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	if s.scores != nil {
		s.scores.SetScore(ctx, user)
	}
	user.HashedPassword = ""
	return user, nil
}

// UpdateUser replaces the stored row. Members may only update their own
// record; admins may update anyone.
func (s *UserService) UpdateUser(ctx context.Context, actorID, actorRole, id string, req UpdateUserRequest) (*model.User, error) {
	if !model.IsAdminRole(actorRole) && actorID != id {
		return nil, common.ErrForbidden
	}
	if req.Username == "" || req.Email == "" {
		return nil, common.ErrValidation
	}
	if req.Points < 0 {
		return nil, common.Errorf("points must be non-negative: %w", common.ErrValidation)
	}

	current, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = current.Role
	}
	if !model.IsAdminRole(role) && !model.IsMemberRole(role) {
		return nil, common.Errorf("unknown role %q: %w", role, common.ErrValidation)
	}

	hashedPassword := current.HashedPassword
	if req.Password != "" {
		hashedPassword, err = security.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	user := &model.User{
		ID:             id,
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashedPassword,
		Role:           role,
		Points:         req.Points,
		IsActive:       isActive,
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	if s.scores != nil {
		s.scores.SetScore(ctx, user)
	}
	user.HashedPassword = ""
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	if s.scores != nil {
		s.scores.RemoveScore(ctx, id)
	}
	return nil
}
