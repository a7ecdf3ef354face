package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AllRoomTypes список всех допустимых категорий номеров
// Используется для валидации входных данных
var AllRoomTypes = []RoomType{
	RoomTypeStandard,
	RoomTypeJunior,
	RoomTypeMaster,
}
