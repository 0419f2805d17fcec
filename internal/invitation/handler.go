package invitation

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/veiligwerk/toolbox-tracker/internal/transport"
	"github.com/veiligwerk/toolbox-tracker/pkg/logger"
)

type ServiceAPI interface {
	GetAll() ([]*Invitation, error)
	Create(dto CreateInvitationDTO) (*Invitation, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	invitations, err := h.Service.GetAll()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, invitations)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateInvitationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	invitation, err := h.Service.Create(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, invitation)
}
