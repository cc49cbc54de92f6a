package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/itai/estagios/internal/app/models/dto"
	"github.com/itai/estagios/internal/app/repositories"
	"github.com/itai/estagios/internal/pkg/apperrors"
	"github.com/itai/estagios/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// authService implements AuthService
type authService struct {
	studentRepo repositories.IStudentRepository
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(studentRepo repositories.IStudentRepository, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authService{
		studentRepo: studentRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Login authenticates a student by email and password and issues a token.
// Unknown user and wrong password both surface as ErrInvalidCredentials so
// the caller cannot tell them apart.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	student, err := s.studentRepo.GetByEmail(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up student: %w", err)
	}

	if !auth.CheckPassword(student.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, expiresIn, err := s.jwtService.GenerateToken(student)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	// Best effort, a failed timestamp update must not fail the login
	if err := s.studentRepo.UpdateLastLogin(ctx, student.ID); err != nil {
		s.logger.Warn().Err(err).Int64("studentID", student.ID).Msg("Failed to update last login time")
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}
