// Package memlock реализует сериализацию критических секций для
// in-memory хранилищ. Заменяет сериализуемую транзакцию БД: вся
// последовательность проверок и мутаций выполняется под одним мьютексом,
// поэтому на номер и диапазон дат может выиграть не более одной брони.
package memlock

import (
	"context"
	"sync"
)

// Manager управляет единственной критической секцией
type Manager struct {
	mu sync.Mutex
}

// NewManager создает новый экземпляр менеджера
func NewManager() *Manager {
	return &Manager{}
}

// DoSerializable выполняет fn под мьютексом. Если контекст уже отменен,
// fn не вызывается.
func (m *Manager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(ctx)
}
