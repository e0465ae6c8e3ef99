package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/thereayou/chattr/internal/database"
	"github.com/thereayou/chattr/internal/middleware"
)

type ProfileHandler struct {
	db *database.Database
}

func NewProfileHandler(db *database.Database) *ProfileHandler {
	return &ProfileHandler{db: db}
}

// GetMe возвращает профиль текущего пользователя с выбранными интересами
func (h *ProfileHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	profile, err := h.db.GetProfile(userID.String())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}

	interestIDs, err := h.db.GetUserInterestIDs(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load interests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           profile.ID,
		"username":     profile.Username,
		"bio":          profile.Bio,
		"avatar_url":   profile.AvatarURL,
		"created_at":   profile.CreatedAt,
		"interest_ids": interestIDs,
	})
}

// UpdateMe сохраняет профиль и полностью заменяет выбранные интересы
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req struct {
		Username    string      `json:"username"`
		Bio         string      `json:"bio"`
		AvatarURL   string      `json:"avatar_url"`
		InterestIDs []uuid.UUID `json:"interest_ids"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.InterestIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select at least one interest"})
		return
	}

	profile, err := h.db.GetProfile(userID.String())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}

	// Обновляем только переданные поля
	if strings.TrimSpace(req.Username) != "" {
		profile.Username = strings.TrimSpace(req.Username)
	}
	profile.Bio = req.Bio
	if req.AvatarURL != "" {
		profile.AvatarURL = req.AvatarURL
	}

	if err := h.db.UpdateProfile(profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}

	if err := h.db.ReplaceUserInterests(userID, req.InterestIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save interests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           profile.ID,
		"username":     profile.Username,
		"bio":          profile.Bio,
		"avatar_url":   profile.AvatarURL,
		"interest_ids": req.InterestIDs,
	})
}

// GetUser возвращает публичный профиль по ID
func (h *ProfileHandler) GetUser(c *gin.Context) {
	profile, err := h.db.GetProfile(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         profile.ID,
		"username":   profile.Username,
		"bio":        profile.Bio,
		"avatar_url": profile.AvatarURL,
	})
}
