package employee

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
	Create(createdBy int64, dto CreateEmployeeDTO) (*CreatedEmployee, error)
	List() ([]*Employee, error)
	SetActive(employeeID int64, active bool) (*Employee, error)
	Delete(employeeID int64) error
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

// CreateEmployee handles POST /employees (admin only). The response carries
// the one-time temporary password.
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	account, ok := internal.AccountFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateEmployeeDTO
	if err := transport.DecodeJSONBody(r, &dto); err != nil {
		h.WriteAppError(w, err)
		return
	}

	created, err := h.Service.Create(account.ID, dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message":      "Employee added successfully",
		"employee":     created.Employee,
		"tempPassword": created.TempPassword,
	})
}

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.List()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"employees": employees})
}

// SetActive handles PATCH /employees/{id} with {"isActive": bool}.
func (h *Handler) SetActive(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	var dto SetActiveDTO
	if err := transport.DecodeJSONBody(r, &dto); err != nil {
		h.WriteAppError(w, err)
		return
	}

	emp, err := h.Service.SetActive(id, *dto.IsActive)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Employee status updated successfully",
		"employee": emp,
	})
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	if err := h.Service.Delete(id); err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Employee deleted successfully"})
}
