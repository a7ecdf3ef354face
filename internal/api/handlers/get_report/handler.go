package get_report

import (
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
)

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/report
// Текстовый дамп состояния: номера, бронирования и пользователи
// от новых к старым
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Render(r.Context())
	if err != nil {
		h.logger.Error("GET /report - Failed to render report: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /report - Report rendered successfully")
	handlers.RespondText(w, http.StatusOK, report)
}
