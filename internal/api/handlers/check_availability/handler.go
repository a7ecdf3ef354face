package check_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-HotelService/internal/usecase/check_availability"
)

const (
	msgInvalidRoomNumber = "некорректный номер комнаты"
	msgInvalidDateFormat = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange  = "дата заезда должна быть раньше даты выезда"
	msgRoomNotFound      = "номер не найден"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomNumber}/availability?checkIn=YYYY-MM-DD&checkOut=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomNumberStr := vars["roomNumber"]

	roomNumber, err := strconv.ParseInt(roomNumberStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{roomNumber}/availability - Invalid room number: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomNumber)
		return
	}

	query := r.URL.Query()

	checkIn, err := time.Parse(domain.DateFormat, query.Get("checkIn"))
	if err != nil {
		h.logger.Warn("GET /rooms/{roomNumber}/availability - Invalid checkIn: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	checkOut, err := time.Parse(domain.DateFormat, query.Get("checkOut"))
	if err != nil {
		h.logger.Warn("GET /rooms/{roomNumber}/availability - Invalid checkOut: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	useCaseReq := &checkAvailability.Request{
		RoomNumber: roomNumber,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidDate):
			h.logger.Warn("GET /rooms/{roomNumber}/availability - Invalid date range: room_number=%d", roomNumber)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, checkAvailability.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{roomNumber}/availability - Room not found: room_number=%d", roomNumber)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("GET /rooms/{roomNumber}/availability - Failed to check availability: room_number=%d, error=%v",
				roomNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{roomNumber}/availability - Availability checked: room_number=%d, available=%t",
		roomNumber, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
