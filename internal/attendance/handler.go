package attendance

import (
	"log/slog"
	"net/http"

	"github.com/danisworo/workdesk/internal"
	"github.com/danisworo/workdesk/internal/transport"
	"github.com/danisworo/workdesk/pkg/logger"
)

type ServiceAPI interface {
	CheckIn(employeeID int64) (*Record, error)
	CheckOut(employeeID int64) (*Record, error)
	History(employeeID int64) ([]*Record, error)
	Current(employeeID int64) (*Record, error)
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

// CheckIn handles POST /attendance/check-in for the authenticated employee.
func (h *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	account, ok := internal.AccountFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	record, err := h.Service.CheckIn(account.ID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Checked in",
		"record":  record,
	})
}

// CheckOut handles POST /attendance/check-out.
func (h *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	account, ok := internal.AccountFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	record, err := h.Service.CheckOut(account.ID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Checked out",
		"record":  record,
	})
}

// History handles GET /attendance: recent records plus the current open one.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	account, ok := internal.AccountFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	records, err := h.Service.History(account.ID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	current, err := h.Service.Current(account.ID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"records":   records,
		"checkedIn": current != nil,
		"current":   current,
	})
}
