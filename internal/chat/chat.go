package chat

import (
	"time"

	"github.com/danisworo/workdesk/internal"
)

type Chat struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	UserID      int64     `json:"user_id" gorm:"column:user_id;not null"`
	Title       string    `json:"title" gorm:"not null"`
	LastMessage string    `json:"last_message" gorm:"column:last_message"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (Chat) TableName() string {
	return "chats"
}

type Message struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	ChatID    int64     `json:"chat_id" gorm:"column:chat_id;not null"`
	Content   string    `json:"content" gorm:"not null"`
	Sender    string    `json:"sender" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
}

func (Message) TableName() string {
	return "chat_messages"
}

const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

type Repository interface {
	CreateChat(chat *Chat) error
	GetChat(id int64) (*Chat, error)
	ListChatsByUser(userID int64) ([]*Chat, error)
	UpdateChat(chat *Chat) error
	DeleteChat(id int64) error

	CreateMessage(message *Message) error
	ListMessages(chatID int64) ([]*Message, error)
}

// ErrChatNotFound covers both a missing chat and a chat owned by another
// account. The two cases are indistinguishable to the caller.
var ErrChatNotFound = internal.NewNotFoundError("Chat not found", internal.ErrCodeChatNotFound)
