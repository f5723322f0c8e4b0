package chat

import (
	"context"
	"log/slog"
	"time"
)

// Generator produces assistant replies for user prompts.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const (
	defaultChatTitle = "New Chat"
	welcomeMessage   = "How can I assist you today?"

	// Returned in place of a reply when the generation service is down or
	// times out. The user message is already stored at that point.
	fallbackMessage = "Sorry, I'm having trouble responding right now. Please try again in a moment."
)

type Service struct {
	repo      Repository
	generator Generator
	logger    *slog.Logger
}

func NewService(repo Repository, generator Generator, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		generator: generator,
		logger:    logger,
	}
}

// CreateChat opens a new chat for the account and seeds it with the
// assistant's welcome message. The two writes are not transactional; a chat
// without the welcome message is harmless.
func (s *Service) CreateChat(userID int64, dto CreateChatDTO) (*Chat, error) {
	title := dto.Title
	if title == "" {
		title = defaultChatTitle
	}

	c := &Chat{
		UserID:      userID,
		Title:       title,
		LastMessage: welcomeMessage,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.repo.CreateChat(c); err != nil {
		s.logger.Error("failed to create chat", "error", err, "user_id", userID)
		return nil, err
	}

	welcome := &Message{
		ChatID:    c.ID,
		Content:   welcomeMessage,
		Sender:    SenderAssistant,
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateMessage(welcome); err != nil {
		s.logger.Warn("failed to store welcome message", "error", err, "chat_id", c.ID)
	}

	s.logger.Info("chat created", "chat_id", c.ID, "user_id", userID)
	return c, nil
}

func (s *Service) ListChats(userID int64) ([]*Chat, error) {
	chats, err := s.repo.ListChatsByUser(userID)
	if err != nil {
		s.logger.Error("failed to list chats", "error", err, "user_id", userID)
		return nil, err
	}
	return chats, nil
}

// GetChat returns the chat only when it belongs to the account. A foreign
// chat looks exactly like a missing one.
func (s *Service) GetChat(userID, chatID int64) (*Chat, error) {
	c, err := s.repo.GetChat(chatID)
	if err != nil {
		return nil, ErrChatNotFound
	}
	if c.UserID != userID {
		return nil, ErrChatNotFound
	}
	return c, nil
}

func (s *Service) RenameChat(userID, chatID int64, dto UpdateChatDTO) (*Chat, error) {
	c, err := s.GetChat(userID, chatID)
	if err != nil {
		return nil, err
	}

	c.Title = dto.Title
	c.UpdatedAt = time.Now()
	if err := s.repo.UpdateChat(c); err != nil {
		s.logger.Error("failed to rename chat", "error", err, "chat_id", chatID)
		return nil, err
	}
	return c, nil
}

func (s *Service) DeleteChat(userID, chatID int64) error {
	if _, err := s.GetChat(userID, chatID); err != nil {
		return err
	}

	if err := s.repo.DeleteChat(chatID); err != nil {
		s.logger.Error("failed to delete chat", "error", err, "chat_id", chatID)
		return err
	}

	s.logger.Info("chat deleted", "chat_id", chatID, "user_id", userID)
	return nil
}

func (s *Service) ListMessages(userID, chatID int64) ([]*Message, error) {
	if _, err := s.GetChat(userID, chatID); err != nil {
		return nil, err
	}

	messages, err := s.repo.ListMessages(chatID)
	if err != nil {
		s.logger.Error("failed to list messages", "error", err, "chat_id", chatID)
		return nil, err
	}
	return messages, nil
}

// PostMessage stores the user's message, asks the assistant for a reply and
// stores that too. A generation failure degrades to a canned fallback reply
// so the user's message is never lost.
func (s *Service) PostMessage(ctx context.Context, userID, chatID int64, dto PostMessageDTO) (*Message, error) {
	c, err := s.GetChat(userID, chatID)
	if err != nil {
		return nil, err
	}

	userMessage := &Message{
		ChatID:    chatID,
		Content:   dto.Content,
		Sender:    SenderUser,
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateMessage(userMessage); err != nil {
		s.logger.Error("failed to store user message", "error", err, "chat_id", chatID)
		return nil, err
	}

	reply, err := s.generator.Generate(ctx, dto.Content)
	if err != nil {
		s.logger.Warn("assistant generation failed, using fallback",
			"error", err, "chat_id", chatID)
		reply = fallbackMessage
	}

	assistantMessage := &Message{
		ChatID:    chatID,
		Content:   reply,
		Sender:    SenderAssistant,
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateMessage(assistantMessage); err != nil {
		s.logger.Error("failed to store assistant message", "error", err, "chat_id", chatID)
		return nil, err
	}

	c.LastMessage = reply
	c.UpdatedAt = time.Now()
	if err := s.repo.UpdateChat(c); err != nil {
		s.logger.Warn("failed to update chat last message", "error", err, "chat_id", chatID)
	}

	return assistantMessage, nil
}
