package booking

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Repository in-memory репозиторий бронирований. Бронирования только
// добавляются: отмена и удаление не поддерживаются.
type Repository struct {
	mu       sync.RWMutex
	bookings []*domain.Booking
	nextID   int64
}

// NewRepository создает новый экземпляр репозитория бронирований.
// Идентификаторы монотонно растут начиная с 1 и никогда не переиспользуются.
func NewRepository() *Repository {
	return &Repository{nextID: 1}
}

// Create сохраняет новое бронирование, присваивая ему свежий ID
func (r *Repository) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *b
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	r.nextID++

	r.bookings = append(r.bookings, &stored)

	result := stored
	return &result, nil
}

// GetByID возвращает копию бронирования по ID
func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bookings {
		if b.ID == id {
			result := *b
			return &result, nil
		}
	}
	return nil, ErrBookingNotFound
}

// ListByRoom возвращает копии бронирований указанного номера
func (r *Repository) ListByRoom(_ context.Context, roomNumber int64) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*domain.Booking
	for _, b := range r.bookings {
		if b.RoomNumber == roomNumber {
			c := *b
			result = append(result, &c)
		}
	}
	return result, nil
}

// ListByUser возвращает копии бронирований пользователя
func (r *Repository) ListByUser(_ context.Context, userID int64) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*domain.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			c := *b
			result = append(result, &c)
		}
	}
	return result, nil
}

// List возвращает копии всех бронирований в порядке создания
func (r *Repository) List(_ context.Context) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, len(r.bookings))
	for i, b := range r.bookings {
		c := *b
		result[i] = &c
	}
	return result, nil
}
