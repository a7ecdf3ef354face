package room

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Repository in-memory репозиторий номеров отеля.
// Порядок вставки сохраняется: он определяет порядок вывода в отчетах.
type Repository struct {
	mu    sync.RWMutex
	rooms []*domain.Room
}

// NewRepository создает новый экземпляр репозитория номеров
func NewRepository() *Repository {
	return &Repository{}
}

// Upsert вставляет номер или заменяет существующий с тем же number.
// Замена удаляет старую запись и добавляет новую в конец списка,
// поэтому обновленный номер становится самым свежим. Снапшоты уже
// созданных бронирований при этом не затрагиваются.
func (r *Repository) Upsert(_ context.Context, room *domain.Room) (*domain.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *room
	stored.CreatedAt = time.Now()

	for i, existing := range r.rooms {
		if existing.Number == stored.Number {
			r.rooms = append(r.rooms[:i], r.rooms[i+1:]...)
			break
		}
	}
	r.rooms = append(r.rooms, &stored)

	result := stored
	return &result, nil
}

// GetByNumber возвращает копию номера по его number
func (r *Repository) GetByNumber(_ context.Context, number int64) (*domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, room := range r.rooms {
		if room.Number == number {
			result := *room
			return &result, nil
		}
	}
	return nil, ErrRoomNotFound
}

// List возвращает копии всех номеров в порядке вставки
func (r *Repository) List(_ context.Context) ([]*domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Room, len(r.rooms))
	for i, room := range r.rooms {
		c := *room
		result[i] = &c
	}
	return result, nil
}
