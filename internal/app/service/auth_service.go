package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golden9_club/internal/common"
	"golden9_club/internal/common/security"
	"golden9_club/internal/domain/model"
	"golden9_club/internal/domain/repository"

	"github.com/google/uuid"
)

type AuthService struct {
	userRepo repository.UserRepository
	tokens   *security.TokenManager
	scores   ScoreSync
}

func NewAuthService(userRepo repository.UserRepository, tokens *security.TokenManager, scores ScoreSync) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens, scores: scores}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"` // login context: "admin" or member
}

type AuthResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    *model.User `json:"user"`
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, common.ErrValidation
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashedPassword,
		Role:           model.RoleUser, // Default role
		Points:         0,
		IsActive:       true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Repo returns common.ErrConflict on a duplicate email
		return nil, err
	}

	if s.scores != nil {
		s.scores.SetScore(ctx, user)
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	user.HashedPassword = "" // Clear password before returning
	return &AuthResponse{Message: "User registered successfully", Token: token, User: user}, nil
}

// Login verifies credentials against the requested login context. The role
// check runs before the password compare: an admin-context login only accepts
// admin accounts and a member-context login only accepts member accounts.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, common.ErrValidation
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized // Generic message for security
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	wantAdmin := strings.ToLower(req.Role) == model.RoleAdmin
	if wantAdmin && !model.IsAdminRole(user.Role) {
		return nil, common.ErrForbidden
	}
	if !wantAdmin && !model.IsMemberRole(user.Role) {
		return nil, common.ErrForbidden
	}

	if !security.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, common.ErrUnauthorized
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	user.HashedPassword = ""
	return &AuthResponse{Message: "Login successful", Token: token, User: user}, nil
}
