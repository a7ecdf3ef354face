package models

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"userId"`
	RoomNumber int64  `json:"roomNumber"`
	CheckIn    string `json:"checkIn"`  // "2026-06-30"
	CheckOut   string `json:"checkOut"` // "2026-07-07"
	Nights     int    `json:"nights"`
	TotalPrice int64  `json:"totalPrice"`

	// Снапшоты на момент бронирования
	RoomType             string `json:"roomType"`
	PricePerNight        int64  `json:"pricePerNight"`
	UserBalanceAtBooking int64  `json:"userBalanceAtBooking"`

	CreatedAt time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}
	return &BookingResponse{
		ID:                   b.ID,
		UserID:               b.UserID,
		RoomNumber:           b.RoomNumber,
		CheckIn:              b.CheckIn.Format(domain.DateFormat),
		CheckOut:             b.CheckOut.Format(domain.DateFormat),
		Nights:               b.Nights,
		TotalPrice:           b.TotalPrice,
		RoomType:             string(b.RoomType),
		PricePerNight:        b.PricePerNight,
		UserBalanceAtBooking: b.UserBalanceAtBooking,
		CreatedAt:            b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}
	return resp
}
