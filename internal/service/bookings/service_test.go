package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/booking"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newFixture() (*Service, *bookingRepo.Repository) {
	repo := bookingRepo.NewRepository()
	return NewService(repo, nopLogger{}), repo
}

func mustCreate(t *testing.T, repo *bookingRepo.Repository, userID, roomNumber int64) *domain.Booking {
	t.Helper()

	booking, err := repo.Create(context.Background(), &domain.Booking{
		UserID:        userID,
		RoomNumber:    roomNumber,
		CheckIn:       date(2026, time.June, 30),
		CheckOut:      date(2026, time.July, 7),
		Nights:        7,
		TotalPrice:    14000,
		RoomType:      domain.RoomTypeJunior,
		PricePerNight: 2000,
	})
	require.NoError(t, err)
	return booking
}

func TestGetByID_Success(t *testing.T) {
	s, repo := newFixture()
	created := mustCreate(t, repo, 1, 2)

	resp, err := s.GetByID(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, resp.ID)
	assert.Equal(t, int64(1), resp.UserID)
	assert.Equal(t, int64(2), resp.RoomNumber)
	assert.Equal(t, "2026-06-30", resp.CheckIn)
	assert.Equal(t, "2026-07-07", resp.CheckOut)
	assert.Equal(t, 7, resp.Nights)
	assert.Equal(t, int64(14000), resp.TotalPrice)
	assert.Equal(t, "junior", resp.RoomType)
}

func TestGetByID_NotFound(t *testing.T) {
	s, _ := newFixture()

	_, err := s.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings_NewestFirst(t *testing.T) {
	s, repo := newFixture()

	first := mustCreate(t, repo, 1, 1)
	mustCreate(t, repo, 2, 2)
	third := mustCreate(t, repo, 1, 3)

	resp, err := s.GetUserBookings(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)

	assert.Equal(t, third.ID, resp.Bookings[0].ID)
	assert.Equal(t, first.ID, resp.Bookings[1].ID)
}

func TestGetUserBookings_Empty(t *testing.T) {
	s, _ := newFixture()

	resp, err := s.GetUserBookings(context.Background(), 99)
	require.NoError(t, err)
	assert.Empty(t, resp.Bookings)
}

func TestList_NewestFirst(t *testing.T) {
	s, repo := newFixture()

	first := mustCreate(t, repo, 1, 1)
	second := mustCreate(t, repo, 2, 2)
	third := mustCreate(t, repo, 3, 3)

	resp, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 3)

	assert.Equal(t, third.ID, resp.Bookings[0].ID)
	assert.Equal(t, second.ID, resp.Bookings[1].ID)
	assert.Equal(t, first.ID, resp.Bookings[2].ID)
}
