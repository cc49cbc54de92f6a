package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/itai/estagios/internal/app/models/dto"
	"github.com/itai/estagios/internal/app/repositories"
	"github.com/itai/estagios/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// studentService implements StudentService
type studentService struct {
	studentRepo repositories.IStudentRepository
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo repositories.IStudentRepository, logger zerolog.Logger) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// GetProfile returns the projection of the student identified by the token
func (s *studentService) GetProfile(ctx context.Context, studentID int64) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	response := dto.NewStudentResponse(student)
	return &response, nil
}

// ListStudents returns projections of every student
func (s *studentService) ListStudents(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}

	return dto.NewStudentResponseList(students), nil
}

// UpdateProfile merges the input into the caller's own record. The target
// identity comes from the token, never from the payload.
func (s *studentService) UpdateProfile(ctx context.Context, studentID int64, input *dto.StudentInput) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	newEmail := strings.TrimSpace(input.Email)
	if newEmail != student.Email {
		exists, err := s.studentRepo.EmailExists(ctx, newEmail)
		if err != nil {
			return nil, fmt.Errorf("error checking email: %w", err)
		}
		if exists {
			return nil, apperrors.ErrEmailAlreadyExists
		}
	}

	if err := s.studentRepo.UpdateProfile(ctx, studentID, input.FirstName, input.LastName, newEmail); err != nil {
		return nil, err
	}

	updated, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", studentID).Msg("Student profile updated")

	response := dto.NewStudentResponse(updated)
	return &response, nil
}
