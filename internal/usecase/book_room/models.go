package book_room

import "time"

// Request модель запроса на бронирование номера
type Request struct {
	UserID     int64     // ID пользователя
	RoomNumber int64     // Номер комнаты
	CheckIn    time.Time // Дата заезда
	CheckOut   time.Time // Дата выезда
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64     // ID созданного бронирования
	UserID     int64     // ID пользователя
	RoomNumber int64     // Номер комнаты
	CheckIn    time.Time // Дата заезда (усеченная до полуночи)
	CheckOut   time.Time // Дата выезда (усеченная до полуночи)
	Nights     int       // Количество ночей
	TotalPrice int64     // Итоговая стоимость

	// Снапшоты на момент бронирования
	RoomType             string // Категория номера
	PricePerNight        int64  // Цена за ночь
	UserBalanceAtBooking int64  // Баланс пользователя до списания

	CreatedAt time.Time // Время создания
}
