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
	"github.com/jackc/pgx/v5/pgxpool"
)

// IStudentRepository defines the interface for student database operations
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	GetAll(ctx context.Context) ([]models.Student, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, id int64, firstName, lastName, email string) error
	UpdateLastLogin(ctx context.Context, id int64) error
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// studentColumns is the select list shared by the student queries
var studentColumns = []string{
	"id", "email", "password", "first_name", "last_name",
	"role_type", "created_at", "updated_at", "last_login_at",
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{}
	err := row.Scan(
		&student.ID, &student.Email, &student.Password, &student.FirstName,
		&student.LastName, &student.RoleType, &student.CreatedAt,
		&student.UpdatedAt, &student.LastLoginAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error scanning student: %w", err)
	}
	return student, nil
}

// Create creates a new student and returns its ID
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	exists, err := r.EmailExists(ctx, student.Email)
	if err != nil {
		return 0, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return 0, apperrors.ErrEmailAlreadyExists
	}

	var id int64
	err = r.db.QueryRow(ctx, `
		INSERT INTO students (email, password, first_name, last_name, role_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		student.Email, student.Password, student.FirstName, student.LastName, student.RoleType).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	return id, nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := squirrel.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	return scanStudent(r.db.QueryRow(ctx, sql, args...))
}

// GetByEmail retrieves a student by email
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	sql, args, err := squirrel.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"email": email}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	return scanStudent(r.db.QueryRow(ctx, sql, args...))
}

// GetAll retrieves all students ordered by ID
func (r *StudentRepository) GetAll(ctx context.Context) ([]models.Student, error) {
	sql, args, err := squirrel.Select(studentColumns...).
		From("students").
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var student models.Student
		err := rows.Scan(
			&student.ID, &student.Email, &student.Password, &student.FirstName,
			&student.LastName, &student.RoleType, &student.CreatedAt,
			&student.UpdatedAt, &student.LastLoginAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// EmailExists checks if an email is already registered
func (r *StudentRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE email = $1)`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}

// UpdateProfile updates a student's profile fields
func (r *StudentRepository) UpdateProfile(ctx context.Context, id int64, firstName, lastName, email string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE students
		SET first_name = $1, last_name = $2, email = $3, updated_at = $4
		WHERE id = $5`,
		firstName, lastName, email, time.Now(), id)

	if err != nil {
		return fmt.Errorf("error updating student profile: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// UpdateLastLogin updates the last login time
func (r *StudentRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE students
		SET last_login_at = $1
		WHERE id = $2`,
		time.Now(), id)

	if err != nil {
		return fmt.Errorf("failed to update last login time: %w", err)
	}

	return nil
}
