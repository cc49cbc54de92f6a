package seed

import (
	"context"
	"errors"

	"github.com/itai/estagios/internal/app/models"
	"github.com/itai/estagios/internal/app/repositories"
	"github.com/itai/estagios/internal/pkg/apperrors"
	"github.com/itai/estagios/internal/pkg/auth"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// DefaultPassword is the shared password of the seeded accounts
const DefaultPassword = "password"

// defaultStudents is the fixture set the portal ships with: one admin and
// four regular students.
var defaultStudents = []models.Student{
	{Email: "admin@gmail.com", FirstName: "Admin", LastName: "Portal", RoleType: models.RoleAdmin},
	{Email: "thaina@gmail.com", FirstName: "Thaina", LastName: "Silva", RoleType: models.RoleStudent},
	{Email: "joao@gmail.com", FirstName: "Joao", LastName: "Pereira", RoleType: models.RoleStudent},
	{Email: "maria@gmail.com", FirstName: "Maria", LastName: "Souza", RoleType: models.RoleStudent},
	{Email: "pedro@gmail.com", FirstName: "Pedro", LastName: "Costa", RoleType: models.RoleStudent},
}

// CreateDefaultData creates the default student accounts if they don't exist.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	studentRepo := repositories.NewStudentRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default student accounts...")

	hashed, err := auth.HashPassword(DefaultPassword)
	if err != nil {
		return err
	}

	var finalErr error
	for _, fixture := range defaultStudents {
		student := fixture
		student.Password = hashed

		_, err := studentRepo.Create(ctx, &student)
		if err != nil {
			if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
				continue
			}
			lgr.Error().Err(err).Str("email", student.Email).Msg("Error creating default student")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		lgr.Info().Str("email", student.Email).Str("role", string(student.RoleType)).Msg("Default student created")
	}

	return finalErr
}
