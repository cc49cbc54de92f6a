package services

import (
	"context"

	"github.com/itai/estagios/internal/app/models"
	"github.com/itai/estagios/internal/app/models/dto"
)

// AuthService handles authentication operations
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
}

// StudentService handles student resource operations
type StudentService interface {
	GetProfile(ctx context.Context, studentID int64) (*dto.StudentResponse, error)
	ListStudents(ctx context.Context) ([]dto.StudentResponse, error)
	UpdateProfile(ctx context.Context, studentID int64, input *dto.StudentInput) (*dto.StudentResponse, error)
}

// SelectionProcessService handles selection process operations
type SelectionProcessService interface {
	Create(ctx context.Context, input *dto.SelectionProcessInput) (*dto.SelectionProcessResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.SelectionProcessResponse, error)
	List(ctx context.Context) ([]dto.SelectionProcessResponse, error)
	UpdateStatus(ctx context.Context, id int64, status models.SelectionProcessStatus) (*dto.SelectionProcessResponse, error)
	EnrollStudent(ctx context.Context, processID, studentID int64) (*dto.SelectionProcessResponse, error)
}
