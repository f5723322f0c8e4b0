package postgres

import (
	"errors"

	"github.com/danisworo/workdesk/internal/chat"
	"gorm.io/gorm"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) chat.Repository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) CreateChat(c *chat.Chat) error {
	return r.db.Create(c).Error
}

func (r *ChatRepository) GetChat(id int64) (*chat.Chat, error) {
	var c chat.Chat
	err := r.db.Where("id = ?", id).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, chat.ErrChatNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *ChatRepository) ListChatsByUser(userID int64) ([]*chat.Chat, error) {
	var chats []*chat.Chat
	err := r.db.Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&chats).Error
	return chats, err
}

func (r *ChatRepository) UpdateChat(c *chat.Chat) error {
	return r.db.Model(&chat.Chat{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"title":        c.Title,
			"last_message": c.LastMessage,
			"updated_at":   c.UpdatedAt,
		}).Error
}

// DeleteChat removes the chat and its messages. Messages first so a failure
// between the two deletes never leaves orphaned rows pointing at a live chat.
func (r *ChatRepository) DeleteChat(id int64) error {
	if err := r.db.Where("chat_id = ?", id).Delete(&chat.Message{}).Error; err != nil {
		return err
	}

	result := r.db.Where("id = ?", id).Delete(&chat.Chat{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return chat.ErrChatNotFound
	}
	return nil
}

func (r *ChatRepository) CreateMessage(m *chat.Message) error {
	return r.db.Create(m).Error
}

func (r *ChatRepository) ListMessages(chatID int64) ([]*chat.Message, error) {
	var messages []*chat.Message
	err := r.db.Where("chat_id = ?", chatID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}
