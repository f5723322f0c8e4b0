package chat

type CreateChatDTO struct {
	Title string `json:"title" validate:"omitempty,max=200"`
}

type UpdateChatDTO struct {
	Title string `json:"title" validate:"required,max=200"`
}

type PostMessageDTO struct {
	Content string `json:"content" validate:"required"`
}
