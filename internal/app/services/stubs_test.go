package services_test

import (
	"context"
	"time"

	"github.com/itai/estagios/internal/app/models"
	"github.com/itai/estagios/internal/pkg/apperrors"
)

// stubStudentRepo is an in-memory replacement for the student repository
type stubStudentRepo struct {
	students map[int64]*models.Student
	nextID   int64

	lastLoginCalls []int64
	lastLoginErr   error
}

func newStubStudentRepo() *stubStudentRepo {
	return &stubStudentRepo{
		students: make(map[int64]*models.Student),
		nextID:   1,
	}
}

func (r *stubStudentRepo) add(student models.Student) *models.Student {
	if student.ID == 0 {
		student.ID = r.nextID
	}
	if student.ID >= r.nextID {
		r.nextID = student.ID + 1
	}
	student.CreatedAt = time.Now()
	student.UpdatedAt = time.Now()
	r.students[student.ID] = &student
	return r.students[student.ID]
}

func (r *stubStudentRepo) Create(ctx context.Context, student *models.Student) (int64, error) {
	exists, _ := r.EmailExists(ctx, student.Email)
	if exists {
		return 0, apperrors.ErrEmailAlreadyExists
	}
	created := r.add(*student)
	return created.ID, nil
}

func (r *stubStudentRepo) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student, ok := r.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *student
	return &copied, nil
}

func (r *stubStudentRepo) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	for _, student := range r.students {
		if student.Email == email {
			copied := *student
			return &copied, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (r *stubStudentRepo) GetAll(ctx context.Context) ([]models.Student, error) {
	students := make([]models.Student, 0, len(r.students))
	for id := int64(1); id < r.nextID; id++ {
		if student, ok := r.students[id]; ok {
			students = append(students, *student)
		}
	}
	return students, nil
}

func (r *stubStudentRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	for _, student := range r.students {
		if student.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubStudentRepo) UpdateProfile(ctx context.Context, id int64, firstName, lastName, email string) error {
	student, ok := r.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	student.FirstName = firstName
	student.LastName = lastName
	student.Email = email
	student.UpdatedAt = time.Now()
	return nil
}

func (r *stubStudentRepo) UpdateLastLogin(ctx context.Context, id int64) error {
	r.lastLoginCalls = append(r.lastLoginCalls, id)
	if r.lastLoginErr != nil {
		return r.lastLoginErr
	}
	now := time.Now()
	if student, ok := r.students[id]; ok {
		student.LastLoginAt = &now
	}
	return nil
}

// stubProcessRepo is an in-memory replacement for the selection process repository
type stubProcessRepo struct {
	processes map[int64]*models.SelectionProcess
	rosters   map[int64][]int64
	students  *stubStudentRepo
	nextID    int64
}

func newStubProcessRepo(students *stubStudentRepo) *stubProcessRepo {
	return &stubProcessRepo{
		processes: make(map[int64]*models.SelectionProcess),
		rosters:   make(map[int64][]int64),
		students:  students,
		nextID:    1,
	}
}

func (r *stubProcessRepo) add(process models.SelectionProcess) *models.SelectionProcess {
	if process.ID == 0 {
		process.ID = r.nextID
	}
	if process.ID >= r.nextID {
		r.nextID = process.ID + 1
	}
	process.CreatedAt = time.Now()
	process.UpdatedAt = time.Now()
	r.processes[process.ID] = &process
	return r.processes[process.ID]
}

func (r *stubProcessRepo) Create(ctx context.Context, process *models.SelectionProcess) (int64, error) {
	created := r.add(*process)
	return created.ID, nil
}

func (r *stubProcessRepo) GetByID(ctx context.Context, id int64) (*models.SelectionProcess, error) {
	process, ok := r.processes[id]
	if !ok {
		return nil, apperrors.ErrSelectionProcessNotFound
	}

	copied := *process
	copied.Students = nil
	for _, studentID := range r.rosters[id] {
		if student, ok := r.students.students[studentID]; ok {
			copied.Students = append(copied.Students, *student)
		}
	}
	return &copied, nil
}

func (r *stubProcessRepo) GetAll(ctx context.Context) ([]models.SelectionProcess, error) {
	processes := make([]models.SelectionProcess, 0, len(r.processes))
	for id := int64(1); id < r.nextID; id++ {
		if _, ok := r.processes[id]; ok {
			process, err := r.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			processes = append(processes, *process)
		}
	}
	return processes, nil
}

func (r *stubProcessRepo) UpdateStatus(ctx context.Context, id int64, status models.SelectionProcessStatus) error {
	process, ok := r.processes[id]
	if !ok {
		return apperrors.ErrSelectionProcessNotFound
	}
	process.Status = status
	process.UpdatedAt = time.Now()
	return nil
}

func (r *stubProcessRepo) EnrollStudent(ctx context.Context, processID, studentID int64) error {
	if _, ok := r.processes[processID]; !ok {
		return apperrors.ErrSelectionProcessNotFound
	}
	for _, enrolled := range r.rosters[processID] {
		if enrolled == studentID {
			return apperrors.ErrStudentAlreadyEnrolled
		}
	}
	r.rosters[processID] = append(r.rosters[processID], studentID)
	return nil
}
