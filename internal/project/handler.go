package project

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danisworo/workdesk/internal"
	"github.com/danisworo/workdesk/internal/transport"
	"github.com/danisworo/workdesk/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Create(createdBy int64, dto CreateProjectDTO) (*Project, error)
	GetByID(id int64) (*Project, error)
	List() ([]*Project, error)
	Update(id int64, dto UpdateProjectDTO) (*Project, error)
	Delete(id int64) error
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

func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	account, ok := internal.AccountFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateProjectDTO
	if err := transport.DecodeJSONBody(r, &dto); err != nil {
		h.WriteAppError(w, err)
		return
	}

	p, err := h.Service.Create(account.ID, dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Project created successfully",
		"project": p,
	})
}

func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Service.List()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"projects": projects})
}

func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	p, err := h.Service.GetByID(id)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"project": p})
}

func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	var dto UpdateProjectDTO
	if err := transport.DecodeJSONBody(r, &dto); err != nil {
		h.WriteAppError(w, err)
		return
	}

	p, err := h.Service.Update(id, dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Project updated successfully",
		"project": p,
	})
}

func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	if err := h.Service.Delete(id); err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}
