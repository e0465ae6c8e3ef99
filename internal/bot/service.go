package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/thereayou/chattr/internal/database"
	"github.com/thereayou/chattr/internal/models"
)

// Fanout абстракция над hub'ом для рассылки вставленного сообщения
type Fanout interface {
	MessageInserted(message *models.Message)
}

type Service struct {
	db      *database.Database
	client  *Client
	fanout  Fanout
	history int
}

func NewService(db *database.Database, client *Client, fanout Fanout, history int) *Service {
	if history <= 0 {
		history = 10
	}
	return &Service{db: db, client: client, fanout: fanout, history: history}
}

func systemPrompt(roomTopic string) string {
	return fmt.Sprintf(
		`You are a friendly AI chatbot in the %q chat room. Keep responses conversational, helpful, and relevant to %s. Be enthusiastic about the topic and encourage discussion. Keep responses concise (2-3 sentences max).`,
		roomTopic, roomTopic,
	)
}

// Reply собирает транскрипт комнаты, вызывает шлюз и сохраняет ответ
// как сообщение бота (user_id = nil). При ошибке шлюза ничего не пишет.
func (s *Service) Reply(ctx context.Context, roomID uuid.UUID, roomTopic, userMessage string) (string, error) {
	recent, err := s.db.GetRecentMessages(roomID, s.history)
	if err != nil {
		return "", err
	}

	transcript := make([]ChatMessage, 0, len(recent)+2)
	transcript = append(transcript, ChatMessage{Role: "system", Content: systemPrompt(roomTopic)})
	for _, msg := range recent {
		role := "user"
		if msg.IsBot {
			role = "assistant"
		}
		transcript = append(transcript, ChatMessage{Role: role, Content: msg.Content})
	}
	transcript = append(transcript, ChatMessage{Role: "user", Content: userMessage})

	reply, err := s.client.Complete(ctx, transcript)
	if err != nil {
		return "", err
	}
	if reply == "" {
		reply = "I'm here to chat about " + roomTopic + "! What would you like to discuss?"
	}

	message := &models.Message{
		RoomID:    roomID,
		UserID:    nil,
		Content:   reply,
		IsBot:     true,
		CreatedAt: time.Now(),
	}
	if err := s.db.SaveMessage(message); err != nil {
		return "", err
	}

	if s.fanout != nil {
		s.fanout.MessageInserted(message)
	}

	return reply, nil
}
