package set_room

// SetRoomRequest HTTP request model. Номер комнаты берется из URL.
type SetRoomRequest struct {
	RoomType      string `json:"roomType"`      // "standard" | "junior" | "master"
	PricePerNight int64  `json:"pricePerNight"` // цена за ночь, неотрицательная
}
