package book_room

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	bookRoom "github.com/m04kA/SMC-HotelService/internal/usecase/book_room"
)

// BookRoomRequest HTTP request model
type BookRoomRequest struct {
	UserID     int64  `json:"userId"`
	RoomNumber int64  `json:"roomNumber"`
	CheckIn    string `json:"checkIn"`  // "2026-06-30"
	CheckOut   string `json:"checkOut"` // "2026-07-07"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"userId"`
	RoomNumber int64  `json:"roomNumber"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	Nights     int    `json:"nights"`
	TotalPrice int64  `json:"totalPrice"`

	// Снапшоты на момент бронирования
	RoomType             string `json:"roomType"`
	PricePerNight        int64  `json:"pricePerNight"`
	UserBalanceAtBooking int64  `json:"userBalanceAtBooking"`

	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookRoomRequest) ToUseCaseRequest() (*bookRoom.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &bookRoom.Request{
		UserID:     r.UserID,
		RoomNumber: r.RoomNumber,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookRoom.Response) *BookingResponse {
	return &BookingResponse{
		ID:                   resp.ID,
		UserID:               resp.UserID,
		RoomNumber:           resp.RoomNumber,
		CheckIn:              resp.CheckIn.Format(domain.DateFormat),
		CheckOut:             resp.CheckOut.Format(domain.DateFormat),
		Nights:               resp.Nights,
		TotalPrice:           resp.TotalPrice,
		RoomType:             resp.RoomType,
		PricePerNight:        resp.PricePerNight,
		UserBalanceAtBooking: resp.UserBalanceAtBooking,
		CreatedAt:            resp.CreatedAt.Format(time.RFC3339),
	}
}
