package set_room

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRoomNumber  = "некорректный номер комнаты"
	msgInvalidInput       = "некорректная категория или цена номера"
)

type Handler struct {
	service RoomsService
	logger  Logger
}

func NewHandler(service RoomsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/rooms/{roomNumber}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomNumberStr := vars["roomNumber"]

	roomNumber, err := strconv.ParseInt(roomNumberStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /rooms/{roomNumber} - Invalid room number: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomNumber)
		return
	}

	var req SetRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /rooms/{roomNumber} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.SetRoomRequest{
		Number:        roomNumber,
		RoomType:      req.RoomType,
		PricePerNight: req.PricePerNight,
	}

	result, err := h.service.SetRoom(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("PUT /rooms/{roomNumber} - Invalid input: room_number=%d, error=%v", roomNumber, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /rooms/{roomNumber} - Failed to set room: room_number=%d, error=%v", roomNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /rooms/{roomNumber} - Room stored successfully: room_number=%d", roomNumber)
	handlers.RespondJSON(w, http.StatusOK, result)
}
