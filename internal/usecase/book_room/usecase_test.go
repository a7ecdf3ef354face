package book_room

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	userRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/user"
	"github.com/m04kA/SMC-HotelService/pkg/memlock"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixture struct {
	rooms    *roomRepo.Repository
	users    *userRepo.Repository
	bookings *bookingRepo.Repository
	uc       *UseCase
}

func newFixture() *fixture {
	rooms := roomRepo.NewRepository()
	users := userRepo.NewRepository()
	bookings := bookingRepo.NewRepository()

	return &fixture{
		rooms:    rooms,
		users:    users,
		bookings: bookings,
		uc:       NewUseCase(bookings, rooms, users, memlock.NewManager(), nil, nopLogger{}),
	}
}

func (f *fixture) addRoom(t *testing.T, number int64, roomType domain.RoomType, price int64) {
	t.Helper()
	_, err := f.rooms.Upsert(context.Background(), &domain.Room{
		Number:        number,
		Type:          roomType,
		PricePerNight: price,
	})
	require.NoError(t, err)
}

func (f *fixture) addUser(t *testing.T, id int64, balance int64) {
	t.Helper()
	_, err := f.users.Upsert(context.Background(), &domain.User{ID: id, Balance: balance})
	require.NoError(t, err)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExecute_SevenNights(t *testing.T) {
	f := newFixture()
	f.addRoom(t, 2, domain.RoomTypeJunior, 2000)
	f.addUser(t, 1, 20000)

	resp, err := f.uc.Execute(context.Background(), &Request{
		UserID:     1,
		RoomNumber: 2,
		CheckIn:    date(2026, time.June, 30),
		CheckOut:   date(2026, time.July, 7),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, 7, resp.Nights)
	assert.Equal(t, int64(14000), resp.TotalPrice)
	assert.Equal(t, string(domain.RoomTypeJunior), resp.RoomType)
	assert.Equal(t, int64(2000), resp.PricePerNight)
	assert.Equal(t, int64(20000), resp.UserBalanceAtBooking)

	// Баланс списан
	user, err := f.users.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(6000), user.Balance)
}

func TestExecute_InvalidDateOrder(t *testing.T) {
	f := newFixture()
	f.addRoom(t, 2, domain.RoomTypeJunior, 2000)
	f.addUser(t, 1, 20000)

	_, err := f.uc.Execute(context.Background(), &Request{
		UserID:     1,
		RoomNumber: 2,
		CheckIn:    date(2026, time.July, 7),
		CheckOut:   date(2026, time.June, 30),
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_ZeroDates(t *testing.T) {
	f := newFixture()
	f.addRoom(t, 1, domain.RoomTypeStandard, 1000)
	f.addUser(t, 1, 5000)

	_, err := f.uc.Execute(context.Background(), &Request{
		UserID:     1,
		RoomNumber: 1,
		CheckOut:   date(2026, time.July, 8),
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_SameDayIsInvalid(t *testing.T) {
	f := newFixture()
	f.addRoom(t, 1, domain.RoomTypeStandard, 1000)
	f.addUser(t, 1, 5000)

	// Время суток отбрасывается: разное время в один день не дает ночи
	_, err := f.uc.Execute(context.Background(), &Request{
		UserID:     1,
		RoomNumber: 1,
		CheckIn:    time.Date(2026, time.July, 7, 8, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, time.July, 7, 22, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_UserNotFound(t *testing.T) {
	f := newFixture()
	f.addRoom(t, 1, domain.RoomTypeStandard, 1000)

	_, err := f.uc.Execute(context.Background(), &Request{
		UserID:     42,
		RoomNumber: 1,
		CheckIn:    date(2026, time.July, 7),
		CheckOut:   date(2026, time.July, 8),
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestExecute_UserCheckedBeforeRoom(t *testing.T) {
	f := newFixture()

	// Ни пользователя, ни номера: первая проверка выигрывает
	_, err := f.uc.Execute(context.Background(), &Request{
		UserID:     42,
		RoomNumber: 99,
		CheckIn:    date(2026, time.July, 7),
		CheckOut:   date(2026, time.July, 8),
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestExecute_RoomNotFound(t *testing.T) {
	f := newFixture()
	f.addUser(t, 1, 5000)

	_, err := f.uc.Execute(context.Background(), &Request{
		UserID:     1,
		RoomNumber: 99,
		CheckIn:    date(2026, time.July, 7),
		CheckOut:   date(2026, time.July, 8),
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_OverlapRejected(t *testing.T) {
	f := newFixture()
	f.addRoom(t, 1, domain.RoomTypeStandard, 1000)
	f.addUser(t, 1, 5000)
	f.addUser(t, 2, 10000)

	// Первая бронь: 07.07 - 08.07
	_, err := f.uc.Execute(context.Background(), &Request{
		UserID:     1,
		RoomNumber: 1,
		CheckIn:    date(2026, time.July, 7),
		CheckOut:   date(2026, time.July, 8),
	})
	require.NoError(t, err)

	// Пересекающийся диапазон другого пользователя отклоняется
	_, err = f.uc.Execute(context.Background(), &Request{
		UserID:     2,
		RoomNumber: 1,
		CheckIn:    date(2026, time.July, 7),
		CheckOut:   date(2026, time.July, 9),
	})
	assert.ErrorIs(t, err, ErrRoomNotAvailable)
}

func TestExecute_BackToBackAllowed(t *testing.T) {
	f := newFixture()
	f.addRoom(t, 1, domain.RoomTypeStandard, 1000)
	f.addUser(t, 1, 5000)
	f.addUser(t, 2, 10000)

	_, err := f.uc.Execute(context.Background(), &Request{
		UserID:     1,
		RoomNumber: 1,
		CheckIn:    date(2026, time.July, 7),
		CheckOut:   date(2026, time.July, 8),
	})
	require.NoError(t, err)

	// Заезд в день чужого выезда не пересечение
	resp, err := f.uc.Execute(context.Background(), &Request{
		UserID:     2,
		RoomNumber: 1,
		CheckIn:    date(2026, time.July, 8),
		CheckOut:   date(2026, time.July, 9),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Nights)
	assert.Equal(t, int64(1000), resp.TotalPrice)
}

func TestExecute_SameRangeOtherRoomAllowed(t *testing.T) {
	f := newFixture()
	f.addRoom(t, 1, domain.RoomTypeStandard, 1000)
	f.addRoom(t, 3, domain.RoomTypeMaster, 3000)
	f.addUser(t, 2, 10000)

	_, err := f.uc.Execute(context.Background(), &Request{
		UserID:     2,
		RoomNumber: 1,
		CheckIn:    date(2026, time.July, 7),
		CheckOut:   date(2026, time.July, 8),
	})
	require.NoError(t, err)

	// Доступность проверяется по номеру комнаты
	_, err = f.uc.Execute(context.Background(), &Request{
		UserID:     2,
		RoomNumber: 3,
		CheckIn:    date(2026, time.July, 7),
		CheckOut:   date(2026, time.July, 8),
	})
	require.NoError(t, err)
}

func TestExecute_InsufficientBalance(t *testing.T) {
	f := newFixture()
	f.addRoom(t, 2, domain.RoomTypeJunior, 2000)
	f.addUser(t, 1, 5000)

	// 7 ночей × 2000 = 14000 > 5000
	_, err := f.uc.Execute(context.Background(), &Request{
		UserID:     1,
		RoomNumber: 2,
		CheckIn:    date(2026, time.June, 30),
		CheckOut:   date(2026, time.July, 7),
	})
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	var balErr *InsufficientBalanceError
	require.True(t, errors.As(err, &balErr))
	assert.Equal(t, int64(14000), balErr.Required)
	assert.Equal(t, int64(5000), balErr.Available)
}

func TestExecute_FailureLeavesStateUnchanged(t *testing.T) {
	f := newFixture()
	f.addRoom(t, 2, domain.RoomTypeJunior, 2000)
	f.addUser(t, 1, 5000)

	_, err := f.uc.Execute(context.Background(), &Request{
		UserID:     1,
		RoomNumber: 2,
		CheckIn:    date(2026, time.June, 30),
		CheckOut:   date(2026, time.July, 7),
	})
	require.ErrorIs(t, err, ErrInsufficientBalance)

	// Ни брони, ни списания
	bookings, err := f.bookings.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bookings)

	user, err := f.users.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), user.Balance)
}

func TestExecute_BookingIDsMonotonic(t *testing.T) {
	f := newFixture()
	f.addRoom(t, 1, domain.RoomTypeStandard, 1000)
	f.addUser(t, 1, 10000)

	var ids []int64
	for day := 1; day <= 3; day++ {
		resp, err := f.uc.Execute(context.Background(), &Request{
			UserID:     1,
			RoomNumber: 1,
			CheckIn:    date(2026, time.August, day),
			CheckOut:   date(2026, time.August, day+1),
		})
		require.NoError(t, err)
		ids = append(ids, resp.ID)
	}

	// Между успешными бронями была неуспешная попытка: ID не тратится
	_, err := f.uc.Execute(context.Background(), &Request{
		UserID:     1,
		RoomNumber: 1,
		CheckIn:    date(2026, time.August, 1),
		CheckOut:   date(2026, time.August, 2),
	})
	require.ErrorIs(t, err, ErrRoomNotAvailable)

	resp, err := f.uc.Execute(context.Background(), &Request{
		UserID:     1,
		RoomNumber: 1,
		CheckIn:    date(2026, time.August, 10),
		CheckOut:   date(2026, time.August, 11),
	})
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2, 3}, ids)
	assert.Equal(t, int64(4), resp.ID)
}

func TestExecute_SnapshotSurvivesRoomUpdate(t *testing.T) {
	f := newFixture()
	f.addRoom(t, 1, domain.RoomTypeStandard, 1000)
	f.addUser(t, 1, 5000)

	resp, err := f.uc.Execute(context.Background(), &Request{
		UserID:     1,
		RoomNumber: 1,
		CheckIn:    date(2026, time.July, 7),
		CheckOut:   date(2026, time.July, 8),
	})
	require.NoError(t, err)

	// Перезаписываем номер новой категорией и ценой
	f.addRoom(t, 1, domain.RoomTypeMaster, 10000)

	booking, err := f.bookings.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoomTypeStandard, booking.RoomType)
	assert.Equal(t, int64(1000), booking.PricePerNight)
	assert.Equal(t, int64(1000), booking.TotalPrice)
}

func TestExecute_SnapshotSurvivesUserUpdate(t *testing.T) {
	f := newFixture()
	f.addRoom(t, 1, domain.RoomTypeStandard, 1000)
	f.addUser(t, 1, 5000)

	resp, err := f.uc.Execute(context.Background(), &Request{
		UserID:     1,
		RoomNumber: 1,
		CheckIn:    date(2026, time.July, 7),
		CheckOut:   date(2026, time.July, 8),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5000), resp.UserBalanceAtBooking)

	// Перезапись баланса не меняет снапшот брони
	f.addUser(t, 1, 99999)

	booking, err := f.bookings.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), booking.UserBalanceAtBooking)
}

func TestExecute_ZeroPriceRoom(t *testing.T) {
	f := newFixture()
	f.addRoom(t, 1, domain.RoomTypeStandard, 0)
	f.addUser(t, 1, 0)

	// Бесплатный номер доступен даже при нулевом балансе
	resp, err := f.uc.Execute(context.Background(), &Request{
		UserID:     1,
		RoomNumber: 1,
		CheckIn:    date(2026, time.July, 7),
		CheckOut:   date(2026, time.July, 8),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.TotalPrice)
}
