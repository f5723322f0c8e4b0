package task

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
	Create(createdBy int64, dto CreateTaskDTO) (*Task, error)
	GetByID(id int64) (*Task, error)
	List(filter ListFilter) ([]*Task, error)
	Update(id int64, dto UpdateTaskDTO) (*Task, error)
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

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	account, ok := internal.AccountFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateTaskDTO
	if err := transport.DecodeJSONBody(r, &dto); err != nil {
		h.WriteAppError(w, err)
		return
	}

	t, err := h.Service.Create(account.ID, dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Task created successfully",
		"task":    t,
	})
}

// ListTasks handles GET /tasks?assignedTo=&createdBy=
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	var filter ListFilter

	if v := r.URL.Query().Get("assignedTo"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid assignedTo filter")
			return
		}
		filter.AssignedTo = &id
	}
	if v := r.URL.Query().Get("createdBy"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid createdBy filter")
			return
		}
		filter.CreatedBy = &id
	}

	tasks, err := h.Service.List(filter)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"tasks": tasks})
}

func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	t, err := h.Service.GetByID(id)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"task": t})
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var dto UpdateTaskDTO
	if err := transport.DecodeJSONBody(r, &dto); err != nil {
		h.WriteAppError(w, err)
		return
	}

	t, err := h.Service.Update(id, dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Task updated successfully",
		"task":    t,
	})
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := h.Service.Delete(id); err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Task deleted successfully"})
}
