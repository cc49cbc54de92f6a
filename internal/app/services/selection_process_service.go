package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/itai/estagios/internal/app/models"
	"github.com/itai/estagios/internal/app/models/dto"
	"github.com/itai/estagios/internal/app/repositories"
	"github.com/itai/estagios/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// selectionProcessService implements SelectionProcessService
type selectionProcessService struct {
	processRepo repositories.ISelectionProcessRepository
	studentRepo repositories.IStudentRepository
	logger      zerolog.Logger
}

// NewSelectionProcessService creates a new SelectionProcessService
func NewSelectionProcessService(
	processRepo repositories.ISelectionProcessRepository,
	studentRepo repositories.IStudentRepository,
	logger zerolog.Logger,
) SelectionProcessService {
	return &selectionProcessService{
		processRepo: processRepo,
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// Create creates a selection process. New processes always start OPEN.
func (s *selectionProcessService) Create(ctx context.Context, input *dto.SelectionProcessInput) (*dto.SelectionProcessResponse, error) {
	process := &models.SelectionProcess{
		Title:  input.Title,
		Status: models.StatusOpen,
	}

	id, err := s.processRepo.Create(ctx, process)
	if err != nil {
		return nil, fmt.Errorf("error creating selection process: %w", err)
	}

	s.logger.Info().Int64("processID", id).Str("title", input.Title).Msg("Selection process created")

	return s.GetByID(ctx, id)
}

// GetByID returns a selection process projection with its roster
func (s *selectionProcessService) GetByID(ctx context.Context, id int64) (*dto.SelectionProcessResponse, error) {
	process, err := s.processRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := dto.NewSelectionProcessResponse(process)
	return &response, nil
}

// List returns projections of all selection processes
func (s *selectionProcessService) List(ctx context.Context) ([]dto.SelectionProcessResponse, error) {
	processes, err := s.processRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing selection processes: %w", err)
	}

	responses := make([]dto.SelectionProcessResponse, 0, len(processes))
	for i := range processes {
		responses = append(responses, dto.NewSelectionProcessResponse(&processes[i]))
	}

	return responses, nil
}

// UpdateStatus transitions the process status. Processes only move forward:
// OPEN -> IN_PROGRESS -> CLOSED.
func (s *selectionProcessService) UpdateStatus(ctx context.Context, id int64, status models.SelectionProcessStatus) (*dto.SelectionProcessResponse, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrValidationFailed
	}

	process, err := s.processRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !process.Status.CanTransitionTo(status) {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	if err := s.processRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("processID", id).
		Str("from", string(process.Status)).
		Str("to", string(status)).
		Msg("Selection process status updated")

	return s.GetByID(ctx, id)
}

// EnrollStudent adds an existing student to an OPEN process roster
func (s *selectionProcessService) EnrollStudent(ctx context.Context, processID, studentID int64) (*dto.SelectionProcessResponse, error) {
	process, err := s.processRepo.GetByID(ctx, processID)
	if err != nil {
		return nil, err
	}

	if process.Status != models.StatusOpen {
		return nil, apperrors.ErrEnrollmentClosed
	}

	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error looking up student: %w", err)
	}

	if err := s.processRepo.EnrollStudent(ctx, processID, studentID); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("processID", processID).
		Int64("studentID", studentID).
		Msg("Student enrolled in selection process")

	return s.GetByID(ctx, processID)
}
