package database

import (
	"time"

	"github.com/thereayou/chattr/internal/models"
)

type catalogEntry struct {
	Name        string
	Icon        string
	Color       string
	Description string
	RoomName    string
	RoomDesc    string
}

// Статический каталог интересов, по одной комнате на тему
var catalog = []catalogEntry{
	{"Gaming", "🎮", "#8b5cf6", "Video games and esports", "Gaming Lounge", "Talk about your favorite games"},
	{"Music", "🎵", "#ec4899", "All genres, all artists", "Music Hall", "Share and discuss music"},
	{"Coding", "💻", "#22c55e", "Programming and tech", "Code Corner", "Programming talk and help"},
	{"Movies", "🎬", "#f59e0b", "Cinema and series", "Movie Club", "Discuss films and shows"},
	{"Sports", "⚽", "#3b82f6", "Teams, matches, scores", "Sports Bar", "Match talk and fan debates"},
	{"Books", "📚", "#a16207", "Fiction and non-fiction", "Book Nook", "What are you reading?"},
	{"Travel", "✈️", "#06b6d4", "Destinations and trips", "Travel Hub", "Trips, tips and destinations"},
	{"Food", "🍕", "#ef4444", "Cooking and restaurants", "Foodie Spot", "Recipes and restaurant finds"},
}

// SeedCatalog создает интересы и их комнаты, если их еще нет
func (d *Database) SeedCatalog() error {
	for _, entry := range catalog {
		interest := models.Interest{
			Name:        entry.Name,
			Icon:        entry.Icon,
			Color:       entry.Color,
			Description: entry.Description,
		}
		if err := d.db.Where("name = ?", entry.Name).FirstOrCreate(&interest).Error; err != nil {
			return err
		}

		room := models.ChatRoom{
			Name:        entry.RoomName,
			Description: entry.RoomDesc,
			InterestID:  &interest.ID,
			CreatedAt:   time.Now(),
		}
		if err := d.db.Where("interest_id = ?", interest.ID).FirstOrCreate(&room).Error; err != nil {
			return err
		}
	}
	return nil
}
