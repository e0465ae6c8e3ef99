package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/thereayou/chattr/internal/database"
	"github.com/thereayou/chattr/internal/middleware"
	"github.com/thereayou/chattr/internal/models"
)

type FriendHandler struct {
	db *database.Database
}

func NewFriendHandler(db *database.Database) *FriendHandler {
	return &FriendHandler{db: db}
}

// List принятые друзья, нормализованные до "другого" пользователя
func (h *FriendHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	friends, err := h.db.ListFriends(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load friends"})
		return
	}

	result := make([]gin.H, 0, len(friends))
	for _, f := range friends {
		other := f.Receiver
		if f.ReceiverID == userID {
			other = f.Sender
		}
		if other == nil {
			continue
		}
		result = append(result, gin.H{
			"id": f.ID,
			"other_user": gin.H{
				"id":         other.ID,
				"username":   other.Username,
				"avatar_url": other.AvatarURL,
			},
		})
	}

	c.JSON(http.StatusOK, gin.H{"friends": result})
}

// ListRequests входящие и исходящие ожидающие запросы
func (h *FriendHandler) ListRequests(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	incoming, err := h.db.ListIncomingRequests(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load requests"})
		return
	}
	outgoing, err := h.db.ListOutgoingRequests(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load requests"})
		return
	}

	in := make([]gin.H, len(incoming))
	for i, r := range incoming {
		in[i] = gin.H{"id": r.ID, "sender": profileJSON(r.Sender), "created_at": r.CreatedAt}
	}
	out := make([]gin.H, len(outgoing))
	for i, r := range outgoing {
		out[i] = gin.H{"id": r.ID, "receiver": profileJSON(r.Receiver), "created_at": r.CreatedAt}
	}

	c.JSON(http.StatusOK, gin.H{"incoming": in, "outgoing": out})
}

// SendRequest отправляет запрос в друзья по username.
// Перед вставкой проверяем активную связь для неупорядоченной пары.
func (h *FriendHandler) SendRequest(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req struct {
		Username string `json:"username" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trimmed := strings.TrimSpace(req.Username)
	if trimmed == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return
	}

	target, err := h.db.FindProfileByUsername(trimmed)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if target.ID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot add yourself"})
		return
	}

	existing, err := h.db.FindActiveRelationship(userID, target.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check relationship"})
		return
	}
	if existing != nil {
		switch existing.Status {
		case models.FriendPending:
			c.JSON(http.StatusConflict, gin.H{"error": "Request already pending"})
		case models.FriendAccepted:
			c.JSON(http.StatusConflict, gin.H{"error": "You are already friends"})
		}
		return
	}

	friend := &models.Friend{
		SenderID:   userID,
		ReceiverID: target.ID,
		Status:     models.FriendPending,
		CreatedAt:  time.Now(),
	}
	if err := h.db.CreateFriendRequest(friend); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send request"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": friend.ID, "message": "Friend request sent"})
}

// Accept принять запрос может только получатель
func (h *FriendHandler) Accept(c *gin.Context) {
	h.resolveRequest(c, models.FriendAccepted)
}

// Decline отклонить запрос может только получатель
func (h *FriendHandler) Decline(c *gin.Context) {
	h.resolveRequest(c, models.FriendDeclined)
}

func (h *FriendHandler) resolveRequest(c *gin.Context, status models.FriendStatus) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	request, err := h.db.GetFriendRequest(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
		return
	}

	if request.ReceiverID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the receiver can resolve a request"})
		return
	}

	if request.Status != models.FriendPending {
		c.JSON(http.StatusConflict, gin.H{"error": "request is not pending"})
		return
	}

	if err := h.db.UpdateFriendStatus(request.ID, status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": request.ID, "status": status})
}

// Cancel отмена своего исходящего запроса, строка удаляется
func (h *FriendHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	request, err := h.db.GetFriendRequest(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
		return
	}

	if request.SenderID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the sender can cancel a request"})
		return
	}

	if request.Status != models.FriendPending {
		c.JSON(http.StatusConflict, gin.H{"error": "request is not pending"})
		return
	}

	if err := h.db.DeleteFriendRequest(request.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request canceled"})
}

func profileJSON(p *models.Profile) gin.H {
	if p == nil {
		return nil
	}
	return gin.H{
		"id":         p.ID,
		"username":   p.Username,
		"avatar_url": p.AvatarURL,
	}
}
