package check_availability

import (
	"github.com/m04kA/SMC-HotelService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-HotelService/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	RoomNumber    int64  `json:"roomNumber"`
	CheckIn       string `json:"checkIn"`
	CheckOut      string `json:"checkOut"`
	Available     bool   `json:"available"`
	Nights        int    `json:"nights"`
	RoomType      string `json:"roomType"`
	PricePerNight int64  `json:"pricePerNight"`
	TotalPrice    int64  `json:"totalPrice"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		RoomNumber:    resp.RoomNumber,
		CheckIn:       resp.CheckIn.Format(domain.DateFormat),
		CheckOut:      resp.CheckOut.Format(domain.DateFormat),
		Available:     resp.Available,
		Nights:        resp.Nights,
		RoomType:      resp.RoomType,
		PricePerNight: resp.PricePerNight,
		TotalPrice:    resp.TotalPrice,
	}
}
