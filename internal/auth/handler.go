package auth

import (
	"log/slog"
	"net/http"

	"github.com/danisworo/workdesk/internal"
	"github.com/danisworo/workdesk/internal/transport"
	"github.com/danisworo/workdesk/pkg/logger"
)

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

// Login handles POST /auth/login. On success both session cookies are set:
// the signed token and the profile mirror.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := transport.DecodeJSONBody(r, &dto); err != nil {
		h.WriteAppError(w, err)
		return
	}

	token, profile, err := h.Service.Login(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	if err := transport.SetSessionCookies(w, token, profile, h.Service.SessionTTL()); err != nil {
		h.Logger.Error("failed to set session cookies", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"user":    profile,
	})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto RegisterDTO
	if err := transport.DecodeJSONBody(r, &dto); err != nil {
		h.WriteAppError(w, err)
		return
	}

	account, err := h.Service.Register(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Registration successful",
		"user":    account.ToProfile(),
	})
}

// Logout clears both cookies. Idempotent: no token required, always 200.
// The token itself stays valid until expiry; there is no revocation list.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	transport.ClearSessionCookies(w)
	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// ChangePassword handles POST /user/password for the authenticated account
// and refreshes the profile cookie so isPasswordTemporary is immediately
// visible to the client.
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	account, ok := internal.AccountFromContext(r.Context())
	if !ok {
		h.WriteAppError(w, ErrUnauthenticated)
		return
	}

	var dto ChangePasswordDTO
	if err := transport.DecodeJSONBody(r, &dto); err != nil {
		h.WriteAppError(w, err)
		return
	}

	profile, err := h.Service.ChangePassword(account.ID, dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	token := h.ExtractToken(r)
	if err := transport.SetSessionCookies(w, token, profile, h.Service.SessionTTL()); err != nil {
		h.Logger.Error("failed to refresh session cookies", "error", err)
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Password updated successfully",
		"user":    profile,
	})
}

// AuthMiddleware is the authorization guard. It validates the token and then
// re-reads the account so deactivation takes effect on the next request, not
// at token expiry.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractToken(r)
		if token == "" {
			h.WriteAppError(w, ErrUnauthenticated)
			return
		}

		account, err := h.Service.Authorize(token)
		if err != nil {
			h.WriteAppError(w, err)
			return
		}

		ctx := internal.ContextWithAccount(r.Context(), account)
		ctx = logger.With(ctx, "account_id", account.ID, "role", account.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin guards admin-only routes such as employee management.
func (h *Handler) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		account, ok := internal.AccountFromContext(r.Context())
		if !ok {
			h.WriteAppError(w, ErrUnauthenticated)
			return
		}

		if !account.IsAdmin() {
			h.Logger.Warn("access denied: admin role required", "account_id", account.ID, "role", account.Role)
			h.WriteAppError(w, internal.NewForbiddenError("Admin access required", internal.ErrCodeRoleMismatch))
			return
		}

		next.ServeHTTP(w, r)
	})
}
