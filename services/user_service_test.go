package services

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pacificreef/constants"
	"pacificreef/errors"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestCountByRole(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewUserService(UserServiceOptions{DB: db})

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WithArgs(constants.RoleAdmin).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := s.CountByRole(context.Background(), constants.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExistsByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewUserService(UserServiceOptions{DB: db})

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WithArgs("ada").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := s.ExistsByUsername(context.Background(), "ada")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewUserService(UserServiceOptions{DB: db})

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.GetByID(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByRoleAndStatus(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewUserService(UserServiceOptions{DB: db})

	rows := sqlmock.NewRows([]string{"id", "username", "role", "status"}).
		AddRow(1, "ada", constants.RoleClient, constants.UserStatusActive).
		AddRow(2, "grace", constants.RoleClient, constants.UserStatusActive)
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WithArgs(constants.RoleClient, constants.UserStatusActive).
		WillReturnRows(rows)

	users, err := s.FindByRoleAndStatus(context.Background(), constants.RoleClient, constants.UserStatusActive)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "ada", users[0].Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRankNameSuggestions(t *testing.T) {
	names := []string{"Alice", "Bob", "Carolina"}

	suggestions := rankNameSuggestions("Alicia", names)

	assert.Contains(t, suggestions, "Alice")
	assert.NotContains(t, suggestions, "Bob")
	assert.NotContains(t, suggestions, "Carolina")
}

func TestRankNameSuggestionsIgnoresAccents(t *testing.T) {
	suggestions := rankNameSuggestions("Jose", []string{"José", "Henrik"})

	assert.Contains(t, suggestions, "José")
	assert.NotContains(t, suggestions, "Henrik")
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "jose", normalizeName("  José "))
	assert.Equal(t, "o'brien", normalizeName("O'Brien"))
}
