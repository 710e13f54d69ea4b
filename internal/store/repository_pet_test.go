// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pet-storefront/internal/logger"
	"github.com/MKhiriev/go-pet-storefront/models"
)

func newTestDB(t *testing.T, dialect Dialect) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return newDB(conn, dialect, logger.Nop()), mock
}

func newTestPetRepo(t *testing.T, dialect Dialect) (*petRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t, dialect)
	return &petRepository{db: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func testPet() models.Pet {
	return models.Pet{
		OwnerEmail:    "ann@x.io",
		Name:          "Rex",
		Gender:        "Male",
		Species:       "Dog",
		Breed:         "Beagle",
		AgeYears:      3,
		WeightKg:      11.5,
		HealthConcern: "None",
	}
}

func TestSavePet_Success(t *testing.T) {
	repo, mock := newTestPetRepo(t, DialectSQLite)
	pet := testPet()

	mock.ExpectQuery(`INSERT INTO pets \(owner_email,name,gender,species,breed,age_years,weight_kg,health_concern,created_at\) VALUES \(\?,\?,\?,\?,\?,\?,\?,\?,\?\) RETURNING id`).
		WithArgs(pet.OwnerEmail, pet.Name, pet.Gender, pet.Species, pet.Breed,
			pet.AgeYears, pet.WeightKg, pet.HealthConcern, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	saved, err := repo.SavePet(context.Background(), pet)

	require.NoError(t, err)
	assert.Equal(t, int64(7), saved.ID)
	assert.Equal(t, "Rex", saved.Name)
	assert.False(t, saved.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavePet_KeepsCreatedAt(t *testing.T) {
	repo, mock := newTestPetRepo(t, DialectSQLite)
	pet := testPet()
	pet.CreatedAt = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO pets").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), pet.CreatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	saved, err := repo.SavePet(context.Background(), pet)

	require.NoError(t, err)
	assert.Equal(t, pet.CreatedAt, saved.CreatedAt)
}

func TestSavePet_PostgresPlaceholders(t *testing.T) {
	repo, mock := newTestPetRepo(t, DialectPostgres)

	mock.ExpectQuery(`INSERT INTO pets .* VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8,\$9\) RETURNING id`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	_, err := repo.SavePet(context.Background(), testPet())

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavePet_UniqueViolation(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		err     error
	}{
		{
			name:    "postgres",
			dialect: DialectPostgres,
			err:     pgError(pgerrcode.UniqueViolation),
		},
		{
			name:    "sqlite",
			dialect: DialectSQLite,
			err:     sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestPetRepo(t, tt.dialect)

			mock.ExpectQuery("INSERT INTO pets").WillReturnError(tt.err)

			_, err := repo.SavePet(context.Background(), testPet())

			assert.ErrorIs(t, err, ErrPetAlreadyExists)
		})
	}
}

func TestSavePet_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestPetRepo(t, DialectPostgres)

	mock.ExpectQuery("INSERT INTO pets").WillReturnError(pgError(pgerrcode.CheckViolation))

	_, err := repo.SavePet(context.Background(), testPet())

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrPetAlreadyExists)
}

func TestSavePet_RetriesBusyDatabase(t *testing.T) {
	repo, mock := newTestPetRepo(t, DialectSQLite)

	mock.ExpectQuery("INSERT INTO pets").WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
	mock.ExpectQuery("INSERT INTO pets").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	saved, err := repo.SavePet(context.Background(), testPet())

	require.NoError(t, err)
	assert.Equal(t, int64(3), saved.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPets_Success(t *testing.T) {
	repo, mock := newTestPetRepo(t, DialectSQLite)
	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(petColumns).
		AddRow(1, "ann@x.io", "Rex", "Male", "Dog", "Beagle", 3.0, 11.5, "None", created).
		AddRow(2, "ann@x.io", "Tom", "Male", "Cat", "Siamese", 1.5, 4.0, "Allergy", created)

	mock.ExpectQuery(`SELECT id, owner_email, name, .* FROM pets WHERE owner_email = \? ORDER BY created_at, id`).
		WithArgs("ann@x.io").
		WillReturnRows(rows)

	pets, err := repo.ListPets(context.Background(), "ann@x.io")

	require.NoError(t, err)
	require.Len(t, pets, 2)
	assert.Equal(t, "Rex", pets[0].Name)
	assert.Equal(t, 11.5, pets[0].WeightKg)
	assert.Equal(t, "Siamese", pets[1].Breed)
	assert.Equal(t, created, pets[1].CreatedAt)
}

func TestListPets_Empty(t *testing.T) {
	repo, mock := newTestPetRepo(t, DialectSQLite)

	mock.ExpectQuery("SELECT (.+) FROM pets").
		WithArgs("ann@x.io").
		WillReturnRows(sqlmock.NewRows(petColumns))

	pets, err := repo.ListPets(context.Background(), "ann@x.io")

	require.NoError(t, err)
	assert.NotNil(t, pets)
	assert.Empty(t, pets)
}

func TestListPets_QueryError(t *testing.T) {
	repo, mock := newTestPetRepo(t, DialectSQLite)

	mock.ExpectQuery("SELECT (.+) FROM pets").WillReturnError(sql.ErrConnDone)

	_, err := repo.ListPets(context.Background(), "ann@x.io")

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListPets_ScanError(t *testing.T) {
	repo, mock := newTestPetRepo(t, DialectSQLite)

	rows := sqlmock.NewRows(petColumns).
		AddRow("not-a-number", "ann@x.io", "Rex", "Male", "Dog", "Beagle", 3.0, 11.5, "None", time.Now())
	mock.ExpectQuery("SELECT (.+) FROM pets").WillReturnRows(rows)

	_, err := repo.ListPets(context.Background(), "ann@x.io")

	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestListPets_RowsError(t *testing.T) {
	repo, mock := newTestPetRepo(t, DialectSQLite)

	rows := sqlmock.NewRows(petColumns).
		AddRow(1, "ann@x.io", "Rex", "Male", "Dog", "Beagle", 3.0, 11.5, "None", time.Now()).
		RowError(0, errors.New("broken row"))
	mock.ExpectQuery("SELECT (.+) FROM pets").WillReturnRows(rows)

	_, err := repo.ListPets(context.Background(), "ann@x.io")

	assert.ErrorIs(t, err, ErrScanningRows)
}
