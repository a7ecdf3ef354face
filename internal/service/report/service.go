package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Service строит текстовый отчет по текущему состоянию системы.
// Все секции выводятся от новых записей к старым. Отчет только читает
// состояние и ничего не мутирует.
type Service struct {
	roomRepo    RoomRepository
	userRepo    UserRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(
	roomRepo RoomRepository,
	userRepo UserRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *Service {
	return &Service{
		roomRepo:    roomRepo,
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Render возвращает полный дамп: номера, бронирования, пользователи
func (s *Service) Render(ctx context.Context) (string, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("Render: room repository error: %v", err)
		return "", fmt.Errorf("%w: Render - room repository error: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("Render: booking repository error: %v", err)
		return "", fmt.Errorf("%w: Render - booking repository error: %v", ErrInternal, err)
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Error("Render: user repository error: %v", err)
		return "", fmt.Errorf("%w: Render - user repository error: %v", ErrInternal, err)
	}

	var b strings.Builder

	b.WriteString("========== ROOMS (newest to oldest) ==========\n")
	for i := len(rooms) - 1; i >= 0; i-- {
		writeRoom(&b, rooms[i])
	}

	b.WriteString("\n========== BOOKINGS (newest to oldest) ==========\n")
	for i := len(bookings) - 1; i >= 0; i-- {
		writeBooking(&b, bookings[i])
	}

	b.WriteString("\n========== USERS (newest to oldest) ==========\n")
	for i := len(users) - 1; i >= 0; i-- {
		writeUser(&b, users[i])
	}

	return b.String(), nil
}

func writeRoom(b *strings.Builder, r *domain.Room) {
	fmt.Fprintf(b, "Room{number=%d, type=%s, price=%d}\n", r.Number, r.Type, r.PricePerNight)
}

func writeBooking(b *strings.Builder, bk *domain.Booking) {
	fmt.Fprintf(b,
		"Booking{id=%d, userId=%d, roomNumber=%d, type=%s, price=%d, nights=%d, total=%d, userBalanceSnapshot=%d, checkIn=%s, checkOut=%s}\n",
		bk.ID, bk.UserID, bk.RoomNumber, bk.RoomType, bk.PricePerNight,
		bk.Nights, bk.TotalPrice, bk.UserBalanceAtBooking,
		bk.CheckIn.Format(domain.DateFormat), bk.CheckOut.Format(domain.DateFormat))
}

func writeUser(b *strings.Builder, u *domain.User) {
	fmt.Fprintf(b, "User{id=%d, balance=%d}\n", u.ID, u.Balance)
}
