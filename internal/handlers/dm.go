package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/thereayou/chattr/internal/database"
	"github.com/thereayou/chattr/internal/middleware"
	"github.com/thereayou/chattr/internal/models"
)

// Страница истории личной переписки
const dmPageSize = 200

type DMHandler struct {
	db     *database.Database
	fanout *HubFanout
}

func NewDMHandler(db *database.Database, fanout *HubFanout) *DMHandler {
	return &DMHandler{db: db, fanout: fanout}
}

// OpenRoom находит или создает комнату для пары пользователей
func (h *DMHandler) OpenRoom(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req struct {
		UserID string `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	targetUserID, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	if userID == targetUserID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot open a direct chat with yourself"})
		return
	}

	room, err := h.db.GetOrCreateDMRoom(userID, targetUserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open direct chat"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": room.ID, "user_a_id": room.UserAID, "user_b_id": room.UserBID})
}

// GetRoom комната с профилями обоих участников, только для членов
func (h *DMHandler) GetRoom(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	room, err := h.db.GetDMRoom(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	if room.UserAID != userID && room.UserBID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "you are not a member of this chat"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         room.ID,
		"user_a_id":  room.UserAID,
		"user_b_id":  room.UserBID,
		"user_a":     profileJSON(room.UserA),
		"user_b":     profileJSON(room.UserB),
		"created_at": room.CreatedAt,
	})
}

// GetMessages история переписки, старые первыми
func (h *DMHandler) GetMessages(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	room, err := h.db.GetDMRoom(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	if room.UserAID != userID && room.UserBID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "you are not a member of this chat"})
		return
	}

	limit := dmPageSize
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= dmPageSize {
			limit = parsed
		}
	}

	messages, err := h.db.GetDMMessages(room.ID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get messages"})
		return
	}

	result := make([]gin.H, len(messages))
	for i := range messages {
		result[i] = dmMessageToJSON(&messages[i])
	}

	c.JSON(http.StatusOK, gin.H{"messages": result})
}

// SendMessage сохраняет личное сообщение и рассылает его
func (h *DMHandler) SendMessage(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	room, err := h.db.GetDMRoom(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	if room.UserAID != userID && room.UserBID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "you are not a member of this chat"})
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

	message := &models.DMMessage{
		RoomID:    room.ID,
		SenderID:  userID,
		Content:   content,
		CreatedAt: time.Now(),
	}

	if err := h.db.SaveDMMessage(message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save message"})
		return
	}

	full, err := h.db.GetDMMessage(message.ID.String())
	if err != nil {
		full = message
	}

	h.fanout.DMMessageInserted(full)

	c.JSON(http.StatusCreated, dmMessageToJSON(full))
}

func dmMessageToJSON(msg *models.DMMessage) gin.H {
	response := gin.H{
		"id":         msg.ID,
		"room_id":    msg.RoomID,
		"sender_id":  msg.SenderID,
		"content":    msg.Content,
		"created_at": msg.CreatedAt,
	}

	if msg.Sender != nil {
		response["sender"] = gin.H{
			"id":         msg.Sender.ID,
			"username":   msg.Sender.Username,
			"avatar_url": msg.Sender.AvatarURL,
		}
	}

	return response
}
