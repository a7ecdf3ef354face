package user

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Repository in-memory репозиторий пользователей.
// Порядок вставки сохраняется для отчетов.
type Repository struct {
	mu    sync.RWMutex
	users []*domain.User
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository() *Repository {
	return &Repository{}
}

// Upsert вставляет пользователя или безусловно перезаписывает баланс
// существующего. В отличие от номеров, существующий пользователь
// остается на своей позиции и сохраняет дату создания.
func (r *Repository) Upsert(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.ID == user.ID {
			existing.Balance = user.Balance
			result := *existing
			return &result, nil
		}
	}

	stored := *user
	stored.CreatedAt = time.Now()
	r.users = append(r.users, &stored)

	result := stored
	return &result, nil
}

// GetByID возвращает копию пользователя по ID
func (r *Repository) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.ID == id {
			result := *user
			return &result, nil
		}
	}
	return nil, ErrUserNotFound
}

// SetBalance устанавливает баланс пользователя (используется при списании)
func (r *Repository) SetBalance(_ context.Context, id int64, balance int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.ID == id {
			user.Balance = balance
			return nil
		}
	}
	return ErrUserNotFound
}

// List возвращает копии всех пользователей в порядке вставки
func (r *Repository) List(_ context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.User, len(r.users))
	for i, user := range r.users {
		c := *user
		result[i] = &c
	}
	return result, nil
}
