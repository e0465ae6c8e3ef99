package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thereayou/chattr/internal/database"
)

type InterestHandler struct {
	db *database.Database
}

func NewInterestHandler(db *database.Database) *InterestHandler {
	return &InterestHandler{db: db}
}

// List возвращает статический каталог интересов
func (h *InterestHandler) List(c *gin.Context) {
	interests, err := h.db.ListInterests()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load interests"})
		return
	}

	result := make([]gin.H, len(interests))
	for i, interest := range interests {
		result[i] = gin.H{
			"id":          interest.ID,
			"name":        interest.Name,
			"icon":        interest.Icon,
			"color":       interest.Color,
			"description": interest.Description,
		}
	}

	c.JSON(http.StatusOK, gin.H{"interests": result})
}
