package rooms

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
)

// Service сервис для управления номерами отеля
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса номеров
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// SetRoom создает номер или заменяет существующий с тем же номером.
// Снапшоты уже созданных бронирований при замене не меняются.
func (s *Service) SetRoom(ctx context.Context, req *models.SetRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("SetRoom: number=%d, type=%s, price=%d", req.Number, req.RoomType, req.PricePerNight)

	roomType, err := models.ToDomainRoomType(req.RoomType)
	if err != nil {
		s.logger.Warn("SetRoom: invalid room type=%q for room number=%d", req.RoomType, req.Number)
		return nil, fmt.Errorf("%w: unknown room type %q", ErrInvalidInput, req.RoomType)
	}

	if req.PricePerNight < 0 {
		s.logger.Warn("SetRoom: negative price=%d for room number=%d", req.PricePerNight, req.Number)
		return nil, fmt.Errorf("%w: price per night cannot be negative", ErrInvalidInput)
	}

	room := &domain.Room{
		Number:        req.Number,
		Type:          roomType,
		PricePerNight: req.PricePerNight,
	}

	created, err := s.roomRepo.Upsert(ctx, room)
	if err != nil {
		s.logger.Error("SetRoom: repository error for room number=%d: %v", req.Number, err)
		return nil, fmt.Errorf("%w: SetRoom - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetRoom: successfully stored room number=%d", created.Number)
	return models.FromDomainRoom(created), nil
}

// List возвращает все номера от новых к старым (обратный порядок вставки)
func (s *Service) List(ctx context.Context) (*models.RoomListResponse, error) {
	roomList, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	// Разворачиваем порядок вставки: новые записи первыми
	for i, j := 0, len(roomList)-1; i < j; i, j = i+1, j-1 {
		roomList[i], roomList[j] = roomList[j], roomList[i]
	}

	return models.FromDomainRoomList(roomList), nil
}
