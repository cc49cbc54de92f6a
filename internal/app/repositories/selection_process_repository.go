package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/itai/estagios/internal/app/models"
	"github.com/itai/estagios/internal/pkg/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ISelectionProcessRepository defines the interface for selection process
// database operations
type ISelectionProcessRepository interface {
	Create(ctx context.Context, process *models.SelectionProcess) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.SelectionProcess, error)
	GetAll(ctx context.Context) ([]models.SelectionProcess, error)
	UpdateStatus(ctx context.Context, id int64, status models.SelectionProcessStatus) error
	EnrollStudent(ctx context.Context, processID, studentID int64) error
}

// SelectionProcessRepository handles selection process database operations
type SelectionProcessRepository struct {
	db *pgxpool.Pool
}

// NewSelectionProcessRepository creates a new SelectionProcessRepository
func NewSelectionProcessRepository(db *pgxpool.Pool) *SelectionProcessRepository {
	return &SelectionProcessRepository{db: db}
}

// Create creates a new selection process and returns its ID
func (r *SelectionProcessRepository) Create(ctx context.Context, process *models.SelectionProcess) (int64, error) {
	sql, args, err := squirrel.Insert("selection_processes").
		Columns("title", "status").
		Values(process.Title, process.Status).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating selection process: %w", err)
	}

	return id, nil
}

// GetByID retrieves a selection process by ID, including its roster
func (r *SelectionProcessRepository) GetByID(ctx context.Context, id int64) (*models.SelectionProcess, error) {
	process := &models.SelectionProcess{}
	err := r.db.QueryRow(ctx, `
		SELECT id, title, status, created_at, updated_at
		FROM selection_processes
		WHERE id = $1`,
		id).Scan(&process.ID, &process.Title, &process.Status, &process.CreatedAt, &process.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSelectionProcessNotFound
		}
		return nil, fmt.Errorf("error querying selection process: %w", err)
	}

	students, err := r.getRoster(ctx, process.ID)
	if err != nil {
		return nil, err
	}
	process.Students = students

	return process, nil
}

// GetAll retrieves all selection processes with their rosters
func (r *SelectionProcessRepository) GetAll(ctx context.Context) ([]models.SelectionProcess, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, status, created_at, updated_at
		FROM selection_processes
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error querying selection processes: %w", err)
	}
	defer rows.Close()

	var processes []models.SelectionProcess
	for rows.Next() {
		var process models.SelectionProcess
		err := rows.Scan(&process.ID, &process.Title, &process.Status, &process.CreatedAt, &process.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning selection process row: %w", err)
		}
		processes = append(processes, process)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating selection process rows: %w", err)
	}

	for i := range processes {
		students, err := r.getRoster(ctx, processes[i].ID)
		if err != nil {
			return nil, err
		}
		processes[i].Students = students
	}

	return processes, nil
}

// getRoster loads the students enrolled in a selection process
func (r *SelectionProcessRepository) getRoster(ctx context.Context, processID int64) ([]models.Student, error) {
	sql, args, err := squirrel.Select(
		"s.id", "s.email", "s.password", "s.first_name", "s.last_name",
		"s.role_type", "s.created_at", "s.updated_at", "s.last_login_at",
	).From("selection_process_students sps").
		Join("students s ON sps.student_id = s.id").
		Where(squirrel.Eq{"sps.selection_process_id": processID}).
		OrderBy("s.id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building roster query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying roster: %w", err)
	}
	defer rows.Close()

	students := make([]models.Student, 0)
	for rows.Next() {
		var student models.Student
		err := rows.Scan(
			&student.ID, &student.Email, &student.Password, &student.FirstName,
			&student.LastName, &student.RoleType, &student.CreatedAt,
			&student.UpdatedAt, &student.LastLoginAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning roster row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating roster rows: %w", err)
	}

	return students, nil
}

// UpdateStatus updates the status of a selection process
func (r *SelectionProcessRepository) UpdateStatus(ctx context.Context, id int64, status models.SelectionProcessStatus) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE selection_processes
		SET status = $1, updated_at = $2
		WHERE id = $3`,
		status, time.Now(), id)

	if err != nil {
		return fmt.Errorf("error updating selection process status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrSelectionProcessNotFound
	}

	return nil
}

// EnrollStudent adds a student to a selection process roster. The foreign
// keys guarantee the roster only references existing rows.
func (r *SelectionProcessRepository) EnrollStudent(ctx context.Context, processID, studentID int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO selection_process_students (selection_process_id, student_id)
		VALUES ($1, $2)`,
		processID, studentID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			// 23505 unique_violation, 23503 foreign_key_violation
			switch pgErr.Code {
			case "23505":
				return apperrors.ErrStudentAlreadyEnrolled
			case "23503":
				return apperrors.ErrResourceNotFound
			}
		}
		return fmt.Errorf("error enrolling student: %w", err)
	}

	return nil
}
