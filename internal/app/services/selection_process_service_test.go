package services_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itai/estagios/internal/app/models"
	"github.com/itai/estagios/internal/app/models/dto"
	"github.com/itai/estagios/internal/app/services"
	"github.com/itai/estagios/internal/pkg/apperrors"
)

func newProcessService(t *testing.T) (services.SelectionProcessService, *stubStudentRepo, *stubProcessRepo) {
	t.Helper()

	studentRepo := newStubStudentRepo()
	processRepo := newStubProcessRepo(studentRepo)
	service := services.NewSelectionProcessService(processRepo, studentRepo, zerolog.Nop())
	return service, studentRepo, processRepo
}

func TestCreateSelectionProcess_StartsOpen(t *testing.T) {
	service, _, _ := newProcessService(t)

	process, err := service.Create(context.Background(), &dto.SelectionProcessInput{
		Title: "Internship 2024/1",
	})
	require.NoError(t, err)

	assert.Equal(t, "Internship 2024/1", process.Title)
	assert.Equal(t, string(models.StatusOpen), process.Status)
	assert.Empty(t, process.StudentList)
}

func TestGetSelectionProcess_NotFound(t *testing.T) {
	service, _, _ := newProcessService(t)

	_, err := service.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrSelectionProcessNotFound)
}

func TestUpdateStatus_ForwardTransitions(t *testing.T) {
	service, _, _ := newProcessService(t)

	created, err := service.Create(context.Background(), &dto.SelectionProcessInput{Title: "Internship"})
	require.NoError(t, err)

	inProgress, err := service.UpdateStatus(context.Background(), created.ID, models.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, string(models.StatusInProgress), inProgress.Status)

	closed, err := service.UpdateStatus(context.Background(), created.ID, models.StatusClosed)
	require.NoError(t, err)
	assert.Equal(t, string(models.StatusClosed), closed.Status)
}

func TestUpdateStatus_RejectsBackwardAndSkippingTransitions(t *testing.T) {
	service, _, _ := newProcessService(t)

	created, err := service.Create(context.Background(), &dto.SelectionProcessInput{Title: "Internship"})
	require.NoError(t, err)

	// OPEN cannot jump straight to CLOSED
	_, err = service.UpdateStatus(context.Background(), created.ID, models.StatusClosed)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatusTransition)

	_, err = service.UpdateStatus(context.Background(), created.ID, models.StatusInProgress)
	require.NoError(t, err)

	// IN_PROGRESS cannot go back to OPEN
	_, err = service.UpdateStatus(context.Background(), created.ID, models.StatusOpen)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatusTransition)

	_, err = service.UpdateStatus(context.Background(), created.ID, models.StatusClosed)
	require.NoError(t, err)

	// CLOSED is terminal
	_, err = service.UpdateStatus(context.Background(), created.ID, models.StatusInProgress)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatusTransition)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	service, _, _ := newProcessService(t)

	created, err := service.Create(context.Background(), &dto.SelectionProcessInput{Title: "Internship"})
	require.NoError(t, err)

	_, err = service.UpdateStatus(context.Background(), created.ID, "CANCELLED")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestEnrollStudent(t *testing.T) {
	service, studentRepo, _ := newProcessService(t)
	student := studentRepo.add(models.Student{
		Email:     "thaina@gmail.com",
		Password:  "hash",
		FirstName: "Thaina",
		LastName:  "Silva",
		RoleType:  models.RoleStudent,
	})

	created, err := service.Create(context.Background(), &dto.SelectionProcessInput{Title: "Internship"})
	require.NoError(t, err)

	enrolled, err := service.EnrollStudent(context.Background(), created.ID, student.ID)
	require.NoError(t, err)

	require.Len(t, enrolled.StudentList, 1)
	assert.Equal(t, student.ID, enrolled.StudentList[0].ID)
	assert.Equal(t, "thaina@gmail.com", enrolled.StudentList[0].Email)
}

func TestEnrollStudent_Duplicate(t *testing.T) {
	service, studentRepo, _ := newProcessService(t)
	student := studentRepo.add(models.Student{
		Email:    "thaina@gmail.com",
		Password: "hash",
		RoleType: models.RoleStudent,
	})

	created, err := service.Create(context.Background(), &dto.SelectionProcessInput{Title: "Internship"})
	require.NoError(t, err)

	_, err = service.EnrollStudent(context.Background(), created.ID, student.ID)
	require.NoError(t, err)

	_, err = service.EnrollStudent(context.Background(), created.ID, student.ID)
	assert.ErrorIs(t, err, apperrors.ErrStudentAlreadyEnrolled)
}

func TestEnrollStudent_ProcessNotOpen(t *testing.T) {
	service, studentRepo, _ := newProcessService(t)
	student := studentRepo.add(models.Student{
		Email:    "thaina@gmail.com",
		Password: "hash",
		RoleType: models.RoleStudent,
	})

	created, err := service.Create(context.Background(), &dto.SelectionProcessInput{Title: "Internship"})
	require.NoError(t, err)

	_, err = service.UpdateStatus(context.Background(), created.ID, models.StatusInProgress)
	require.NoError(t, err)

	_, err = service.EnrollStudent(context.Background(), created.ID, student.ID)
	assert.ErrorIs(t, err, apperrors.ErrEnrollmentClosed)
}

func TestEnrollStudent_StudentNotFound(t *testing.T) {
	service, _, _ := newProcessService(t)

	created, err := service.Create(context.Background(), &dto.SelectionProcessInput{Title: "Internship"})
	require.NoError(t, err)

	_, err = service.EnrollStudent(context.Background(), created.ID, 99)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestEnrollStudent_ProcessNotFound(t *testing.T) {
	service, studentRepo, _ := newProcessService(t)
	student := studentRepo.add(models.Student{
		Email:    "thaina@gmail.com",
		Password: "hash",
		RoleType: models.RoleStudent,
	})

	_, err := service.EnrollStudent(context.Background(), 42, student.ID)
	assert.ErrorIs(t, err, apperrors.ErrSelectionProcessNotFound)
}

func TestListSelectionProcesses(t *testing.T) {
	service, _, _ := newProcessService(t)

	for _, title := range []string{"Internship 2024/1", "Internship 2024/2"} {
		_, err := service.Create(context.Background(), &dto.SelectionProcessInput{Title: title})
		require.NoError(t, err)
	}

	processes, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, processes, 2)
	assert.Equal(t, "Internship 2024/1", processes[0].Title)
	assert.Equal(t, "Internship 2024/2", processes[1].Title)
}
