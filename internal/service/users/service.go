package users

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/service/users/models"
)

// Service сервис для управления пользователями
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// SetUser создает пользователя или безусловно перезаписывает баланс
// существующего. Перезапись не складывается с текущим балансом и не
// влияет на снапшоты уже созданных бронирований.
func (s *Service) SetUser(ctx context.Context, req *models.SetUserRequest) (*models.UserResponse, error) {
	s.logger.Info("SetUser: id=%d, balance=%d", req.ID, req.Balance)

	if req.Balance < 0 {
		s.logger.Warn("SetUser: negative balance=%d for user id=%d", req.Balance, req.ID)
		return nil, fmt.Errorf("%w: balance cannot be negative", ErrInvalidInput)
	}

	user := &domain.User{
		ID:      req.ID,
		Balance: req.Balance,
	}

	stored, err := s.userRepo.Upsert(ctx, user)
	if err != nil {
		s.logger.Error("SetUser: repository error for user id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: SetUser - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetUser: successfully stored user id=%d", stored.ID)
	return models.FromDomainUser(stored), nil
}

// List возвращает всех пользователей от новых к старым
func (s *Service) List(ctx context.Context) (*models.UserListResponse, error) {
	userList, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	// Разворачиваем порядок вставки: новые записи первыми
	for i, j := 0, len(userList)-1; i < j; i, j = i+1, j-1 {
		userList[i], userList[j] = userList[j], userList[i]
	}

	return models.FromDomainUserList(userList), nil
}
