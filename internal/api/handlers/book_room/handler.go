package book_room

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	bookRoom "github.com/m04kA/SMC-HotelService/internal/usecase/book_room"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateFormat    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange     = "дата заезда должна быть раньше даты выезда"
	msgUserNotFound         = "пользователь не найден"
	msgRoomNotFound         = "номер не найден"
	msgRoomNotAvailable     = "номер занят на выбранные даты"
	msgInsufficientBalance  = "недостаточно средств: требуется %d, доступно %d"
)

type Handler struct {
	useCase BookRoomUseCase
	logger  Logger
}

func NewHandler(useCase BookRoomUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var balErr *bookRoom.InsufficientBalanceError

		switch {
		case errors.Is(err, bookRoom.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid date range: user_id=%d, room_number=%d", req.UserID, req.RoomNumber)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, bookRoom.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found: user_id=%d", req.UserID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, bookRoom.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_number=%d", req.RoomNumber)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, bookRoom.ErrRoomNotAvailable):
			h.logger.Warn("POST /bookings - Room not available: user_id=%d, room_number=%d", req.UserID, req.RoomNumber)
			handlers.RespondError(w, http.StatusConflict, msgRoomNotAvailable)

		case errors.As(err, &balErr):
			h.logger.Warn("POST /bookings - Insufficient balance: user_id=%d, required=%d, available=%d",
				req.UserID, balErr.Required, balErr.Available)
			handlers.RespondError(w, http.StatusConflict,
				fmt.Sprintf(msgInsufficientBalance, balErr.Required, balErr.Available))

		default:
			h.logger.Error("POST /bookings - Failed to book room: user_id=%d, room_number=%d, error=%v",
				req.UserID, req.RoomNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, room_number=%d",
		result.ID, req.UserID, req.RoomNumber)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
