package services

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacificreef/constants"
	"pacificreef/dto"
	"pacificreef/errors"
)

type stubVerifier struct {
	resp *dto.LoginResponse
	err  error
}

func (v *stubVerifier) Verify(ctx context.Context, identifier, password string) (*dto.LoginResponse, error) {
	return v.resp, v.err
}

func TestDemoLoginHardcodedAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db, mock := newMockDB(t)
	verifier := NewDemoCredentialVerifier(db)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp, err := verifier.Verify(context.Background(), "Admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, uint(1), resp.User.UserID)
	assert.Equal(t, "ADMIN", resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDemoLoginHardcodedClient(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db, mock := newMockDB(t)
	verifier := NewDemoCredentialVerifier(db)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp, err := verifier.Verify(context.Background(), "client", "client123")
	require.NoError(t, err)
	assert.Equal(t, uint(2), resp.User.UserID)
	assert.Equal(t, "CLIENT", resp.User.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDemoLoginInvalidCredentials(t *testing.T) {
	db, mock := newMockDB(t)
	verifier := NewDemoCredentialVerifier(db)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := verifier.Verify(context.Background(), "admin", "wrong")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeAuthFailed))
	assert.Equal(t, "invalid credentials", errors.GetAppError(err).Message)
}

func TestDemoLoginPersistedUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db, mock := newMockDB(t)
	verifier := NewDemoCredentialVerifier(db)

	rows := sqlmock.NewRows([]string{"id", "username", "email", "password", "role", "status"}).
		AddRow(7, "ada", "ada@example.com", "s3cret", constants.RoleClient, constants.UserStatusActive)
	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnRows(rows)

	// Save records the login timestamp.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, err := verifier.Verify(context.Background(), "ada", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, uint(7), resp.User.UserID)
	assert.Equal(t, "CLIENT", resp.User.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginCollapsesInternalErrors(t *testing.T) {
	s := NewAuthService(AuthServiceOptions{
		Verifier: &stubVerifier{err: errors.NewAppError(errors.ErrCodeDBError, "connection refused", nil)},
	})

	_, err := s.Login(context.Background(), dto.LoginInput{Identifier: "ada", Password: "pw"})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeAuthFailed))
	assert.Equal(t, "authentication failed", errors.GetAppError(err).Message)
}

func TestLoginKeepsInvalidCredentialMessage(t *testing.T) {
	s := NewAuthService(AuthServiceOptions{
		Verifier: &stubVerifier{err: errors.NewAppError(errors.ErrCodeAuthFailed, "invalid credentials", nil)},
	})

	_, err := s.Login(context.Background(), dto.LoginInput{Identifier: "ada", Password: "pw"})
	require.Error(t, err)
	assert.Equal(t, "invalid credentials", errors.GetAppError(err).Message)
}

func TestRegisterValidatesInput(t *testing.T) {
	s := NewAuthService(AuthServiceOptions{Verifier: &stubVerifier{}})

	_, err := s.Register(context.Background(), dto.RegisterInput{
		Username: "ada",
		Email:    "not-an-email",
		Password: "pw",
	})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidFormat))
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	s := NewAuthService(AuthServiceOptions{Verifier: &stubVerifier{}})

	original, err := GenerateToken(UserInfo{UserId: 7, Role: constants.RoleAdmin}, 60)
	require.NoError(t, err)

	refreshed, err := s.RefreshToken(context.Background(), original)
	require.NoError(t, err)

	userID, role, err := GetUserIDFromToken(refreshed)
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)
	assert.Equal(t, constants.RoleAdmin, role)
}

func TestRefreshTokenRejectsGarbage(t *testing.T) {
	s := NewAuthService(AuthServiceOptions{Verifier: &stubVerifier{}})

	_, err := s.RefreshToken(context.Background(), "not.a.token.at.all")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeAuthFailed))
}
