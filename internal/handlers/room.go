package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/thereayou/chattr/internal/bot"
	"github.com/thereayou/chattr/internal/config"
	"github.com/thereayou/chattr/internal/database"
	"github.com/thereayou/chattr/internal/middleware"
	"github.com/thereayou/chattr/internal/models"
	ws "github.com/thereayou/chattr/internal/websocket"
)

// Страница истории комнаты
const roomPageSize = 100

type RoomHandler struct {
	db     *database.Database
	hub    *ws.Hub
	fanout *HubFanout
	botSvc *bot.Service
	botCfg config.BotConfig
}

func NewRoomHandler(db *database.Database, hub *ws.Hub, fanout *HubFanout, botSvc *bot.Service, botCfg config.BotConfig) *RoomHandler {
	return &RoomHandler{db: db, hub: hub, fanout: fanout, botSvc: botSvc, botCfg: botCfg}
}

// GetMyRooms список комнат по интересам пользователя с превью
// последнего сообщения и количеством онлайн
func (h *RoomHandler) GetMyRooms(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	rooms, err := h.db.GetRoomsForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get rooms"})
		return
	}

	roomsResponse := make([]gin.H, len(rooms))
	for i, room := range rooms {
		roomResponse := formatRoomResponse(&room)

		last, err := h.db.GetLastMessage(room.ID)
		if err == nil && last != nil {
			roomResponse["last_message"] = gin.H{
				"id":         last.ID,
				"content":    last.Content,
				"user_id":    last.UserID,
				"is_bot":     last.IsBot,
				"created_at": last.CreatedAt,
			}
		}

		roomResponse["online_count"] = h.hub.OnlineCount(room.ID)

		roomsResponse[i] = roomResponse
	}

	c.JSON(http.StatusOK, gin.H{"rooms": roomsResponse})
}

// GetRoom информация о комнате
func (h *RoomHandler) GetRoom(c *gin.Context) {
	room, err := h.db.GetRoom(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	response := formatRoomResponse(room)
	response["online_count"] = h.hub.OnlineCount(room.ID)

	c.JSON(http.StatusOK, response)
}

// JoinRoom отмечает присутствие пользователя в комнате
func (h *RoomHandler) JoinRoom(c *gin.Context) {
	h.touchMember(c)
}

// LeaveRoom обновляет last_seen при выходе
func (h *RoomHandler) LeaveRoom(c *gin.Context) {
	h.touchMember(c)
}

func (h *RoomHandler) touchMember(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	if _, err := h.db.GetRoom(roomID.String()); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	if err := h.db.UpsertRoomMember(roomID, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update presence"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

// GetRoomMessages история комнаты, старые первыми
func (h *RoomHandler) GetRoomMessages(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	limit := roomPageSize
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= roomPageSize {
			limit = parsed
		}
	}

	messages, err := h.db.GetRoomMessages(roomID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get messages"})
		return
	}

	result := make([]gin.H, len(messages))
	for i := range messages {
		result[i] = messageToJSON(&messages[i])
	}

	c.JSON(http.StatusOK, gin.H{"messages": result})
}

// SendMessage сохраняет сообщение, рассылает подписчикам и,
// если включен флаг, с задержкой запускает ответ бота
func (h *RoomHandler) SendMessage(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	room, err := h.db.GetRoom(roomID.String())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message content is empty"})
		return
	}

	message := &models.Message{
		RoomID:    roomID,
		UserID:    &userID,
		Content:   content,
		IsBot:     false,
		CreatedAt: time.Now(),
	}

	if err := h.db.SaveMessage(message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save message"})
		return
	}

	full, err := h.db.GetMessage(message.ID.String())
	if err != nil {
		full = message
	}

	h.fanout.MessageInserted(full)

	if h.botCfg.Enabled && h.botSvc != nil && room.Interest != nil {
		topic := room.Interest.Name
		go func() {
			time.Sleep(h.botCfg.ReplyDelay)
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			if _, err := h.botSvc.Reply(ctx, roomID, topic, content); err != nil {
				log.Error().Err(err).Str("room", roomID.String()).Msg("bot reply failed")
			}
		}()
	}

	c.JSON(http.StatusCreated, messageToJSON(full))
}

func messageToJSON(msg *models.Message) gin.H {
	response := gin.H{
		"id":         msg.ID,
		"room_id":    msg.RoomID,
		"user_id":    msg.UserID,
		"content":    msg.Content,
		"is_bot":     msg.IsBot,
		"created_at": msg.CreatedAt,
	}

	if msg.Profile != nil {
		response["profile"] = gin.H{
			"id":         msg.Profile.ID,
			"username":   msg.Profile.Username,
			"avatar_url": msg.Profile.AvatarURL,
		}
	}

	return response
}

func formatRoomResponse(room *models.ChatRoom) gin.H {
	response := gin.H{
		"id":          room.ID,
		"name":        room.Name,
		"description": room.Description,
		"interest_id": room.InterestID,
		"created_at":  room.CreatedAt,
	}

	if room.Interest != nil {
		response["interest"] = gin.H{
			"id":    room.Interest.ID,
			"name":  room.Interest.Name,
			"icon":  room.Interest.Icon,
			"color": room.Interest.Color,
		}
	}

	return response
}
