package dto

// BotRequest контракт функции chat-bot, имена полей как у исходной функции
type BotRequest struct {
	RoomID      string `json:"roomId" binding:"required"`
	RoomTopic   string `json:"roomTopic"`
	UserMessage string `json:"userMessage" binding:"required"`
}

type BotResponse struct {
	Message string `json:"message"`
}
