package completion

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	apperrors "github.com/veiligwerk/toolbox-tracker/internal"
	"github.com/veiligwerk/toolbox-tracker/internal/transport"
	"github.com/veiligwerk/toolbox-tracker/pkg/logger"
)

type ServiceAPI interface {
	GetAll() ([]*Completion, error)
	GetByEmployeeID(employeeID string) ([]*Completion, error)
	Create(dto CreateCompletionDTO, actorUserID string) (*Completion, error)
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
	completions, err := h.Service.GetAll()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, completions)
}

func (h *Handler) ListForEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	completions, err := h.Service.GetByEmployeeID(employeeID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, completions)
}

// Create stamps the completion with the authenticated caller as the
// recording user.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	actorID := apperrors.ActorIDFromContext(r.Context())
	if actorID == "" {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateCompletionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	completion, err := h.Service.Create(dto, actorID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, completion)
}
