package check_availability

import "time"

// Request модель запроса проверки доступности номера
type Request struct {
	RoomNumber int64     // Номер комнаты
	CheckIn    time.Time // Дата заезда
	CheckOut   time.Time // Дата выезда
}

// Response модель ответа с результатом проверки.
// Nights и TotalPrice считаются по текущей цене номера и показывают,
// сколько стоило бы проживание при бронировании сейчас.
type Response struct {
	RoomNumber    int64     // Номер комнаты
	CheckIn       time.Time // Дата заезда (усеченная до полуночи)
	CheckOut      time.Time // Дата выезда (усеченная до полуночи)
	Available     bool      // Свободен ли номер на весь диапазон
	Nights        int       // Количество ночей
	PricePerNight int64     // Текущая цена за ночь
	TotalPrice    int64     // Стоимость проживания по текущей цене
	RoomType      string    // Текущая категория номера
}
