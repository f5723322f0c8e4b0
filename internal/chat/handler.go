package chat

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danisworo/workdesk/internal"
	"github.com/danisworo/workdesk/internal/transport"
	"github.com/danisworo/workdesk/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreateChat(userID int64, dto CreateChatDTO) (*Chat, error)
	ListChats(userID int64) ([]*Chat, error)
	GetChat(userID, chatID int64) (*Chat, error)
	RenameChat(userID, chatID int64, dto UpdateChatDTO) (*Chat, error)
	DeleteChat(userID, chatID int64) error
	ListMessages(userID, chatID int64) ([]*Message, error)
	PostMessage(ctx context.Context, userID, chatID int64, dto PostMessageDTO) (*Message, error)
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

func (h *Handler) CreateChat(w http.ResponseWriter, r *http.Request) {
	account, ok := internal.AccountFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateChatDTO
	if err := transport.DecodeJSONBody(r, &dto); err != nil {
		h.WriteAppError(w, err)
		return
	}

	c, err := h.Service.CreateChat(account.ID, dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Chat created successfully",
		"chat":    c,
	})
}

func (h *Handler) ListChats(w http.ResponseWriter, r *http.Request) {
	account, ok := internal.AccountFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	chats, err := h.Service.ListChats(account.ID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"chats": chats})
}

func (h *Handler) GetChat(w http.ResponseWriter, r *http.Request) {
	account, chatID, ok := h.chatRequest(w, r)
	if !ok {
		return
	}

	c, err := h.Service.GetChat(account.ID, chatID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"chat": c})
}

func (h *Handler) RenameChat(w http.ResponseWriter, r *http.Request) {
	account, chatID, ok := h.chatRequest(w, r)
	if !ok {
		return
	}

	var dto UpdateChatDTO
	if err := transport.DecodeJSONBody(r, &dto); err != nil {
		h.WriteAppError(w, err)
		return
	}

	c, err := h.Service.RenameChat(account.ID, chatID, dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Chat updated successfully",
		"chat":    c,
	})
}

func (h *Handler) DeleteChat(w http.ResponseWriter, r *http.Request) {
	account, chatID, ok := h.chatRequest(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeleteChat(account.ID, chatID); err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Chat deleted successfully"})
}

func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	account, chatID, ok := h.chatRequest(w, r)
	if !ok {
		return
	}

	messages, err := h.Service.ListMessages(account.ID, chatID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"messages": messages})
}

func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	account, chatID, ok := h.chatRequest(w, r)
	if !ok {
		return
	}

	var dto PostMessageDTO
	if err := transport.DecodeJSONBody(r, &dto); err != nil {
		h.WriteAppError(w, err)
		return
	}

	reply, err := h.Service.PostMessage(r.Context(), account.ID, chatID, dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{"message": reply})
}

func (h *Handler) chatRequest(w http.ResponseWriter, r *http.Request) (*internal.AccountContext, int64, bool) {
	account, ok := internal.AccountFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return nil, 0, false
	}

	chatID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid chat id")
		return nil, 0, false
	}

	return account, chatID, true
}
