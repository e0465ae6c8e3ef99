package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/thereayou/chattr/internal/bot"
	"github.com/thereayou/chattr/internal/handlers/dto"
)

// BotHandler внешний контракт функции chat-bot:
// {roomId, roomTopic, userMessage} -> {message} или {error} с 5xx
type BotHandler struct {
	botSvc *bot.Service
}

func NewBotHandler(botSvc *bot.Service) *BotHandler {
	return &BotHandler{botSvc: botSvc}
}

func (h *BotHandler) ChatBot(c *gin.Context) {
	var req dto.BotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid roomId"})
		return
	}

	reply, err := h.botSvc.Reply(c.Request.Context(), roomID, req.RoomTopic, req.UserMessage)
	if err != nil {
		log.Error().Err(err).Str("room", req.RoomID).Msg("chat-bot function failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.BotResponse{Message: reply})
}
