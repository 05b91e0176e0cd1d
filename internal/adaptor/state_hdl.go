package adaptor

import (
	"net/http"

	"cinema-showtime/internal/usecase"
	"cinema-showtime/pkg/utils"

	"go.uber.org/zap"
)

type StateHandler struct {
	service usecase.StateService
	log     *zap.Logger
}

func NewStateHandler(service usecase.StateService, log *zap.Logger) *StateHandler {
	return &StateHandler{
		service: service,
		log:     log.With(zap.String("handler", "state")),
	}
}

// Save handles POST /api/admin/save
func (h *StateHandler) Save(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Save(r.Context()); err != nil {
		handleServiceError(h.log, w, err, "save state")
		return
	}

	utils.ResponseSuccess(w, "State saved", nil)
}
