package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

var (
	// ErrInvalidRoomType возвращается при неизвестной категории номера
	ErrInvalidRoomType = errors.New("invalid room type")
)

// Request модели

// SetRoomRequest запрос на создание или замену номера
type SetRoomRequest struct {
	Number        int64  `json:"roomNumber"`
	RoomType      string `json:"roomType"`
	PricePerNight int64  `json:"pricePerNight"`
}

// Response модели

// RoomResponse ответ с данными номера
type RoomResponse struct {
	Number        int64     `json:"roomNumber"`
	RoomType      string    `json:"roomType"`
	PricePerNight int64     `json:"pricePerNight"`
	CreatedAt     time.Time `json:"createdAt"`
}

// RoomListResponse ответ со списком номеров
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// Методы конвертации

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}
	return &RoomResponse{
		Number:        r.Number,
		RoomType:      string(r.Type),
		PricePerNight: r.PricePerNight,
		CreatedAt:     r.CreatedAt,
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{
		Rooms: make([]RoomResponse, 0, len(rooms)),
	}
	for _, room := range rooms {
		if roomResp := FromDomainRoom(room); roomResp != nil {
			resp.Rooms = append(resp.Rooms, *roomResp)
		}
	}
	return resp
}

// ToDomainRoomType конвертирует строку в domain.RoomType с валидацией
func ToDomainRoomType(roomType string) (domain.RoomType, error) {
	t := domain.RoomType(roomType)
	for _, valid := range domain.AllRoomTypes {
		if t == valid {
			return t, nil
		}
	}
	return "", ErrInvalidRoomType
}
