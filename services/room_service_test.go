package services

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacificreef/dto"
	"pacificreef/errors"
	"pacificreef/models"
)

func roomRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "number", "type", "price", "status"}).
		AddRow(1, "101", "STANDARD", "100.00", "AVAILABLE").
		AddRow(2, "102", "DELUXE", "200.00", "OCCUPIED").
		AddRow(3, "201", "SUITE", "400.00", "AVAILABLE")
}

func TestListRoomsPagination(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewRoomService(RoomServiceOptions{DB: db})

	mock.ExpectQuery(`SELECT \* FROM "rooms" ORDER BY number ASC`).
		WillReturnRows(roomRows())

	rooms, total, err := s.List(context.Background(), 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, rooms, 2)
	assert.Equal(t, "101", rooms[0].Number)
	assert.Equal(t, "102", rooms[1].Number)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRoomsPastEnd(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewRoomService(RoomServiceOptions{DB: db})

	mock.ExpectQuery(`SELECT \* FROM "rooms" ORDER BY number ASC`).
		WillReturnRows(roomRows())

	rooms, total, err := s.List(context.Background(), 5, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Empty(t, rooms)
}

func TestChangeStatusRejectsUnknownStatus(t *testing.T) {
	s := NewRoomService(RoomServiceOptions{})

	_, err := s.ChangeStatus(context.Background(), 1, models.RoomStatus("HAUNTED"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))
}

func TestCreateRoomRejectsInvalidInput(t *testing.T) {
	s := NewRoomService(RoomServiceOptions{})

	_, err := s.Create(context.Background(), dto.CreateRoomRequest{
		Number: "",
		Type:   "STANDARD",
	})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeRequiredField))
}
