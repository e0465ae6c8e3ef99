package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/thereayou/chattr/internal/bot"
	"github.com/thereayou/chattr/internal/database"
)

func botRoutes(r *gin.Engine, d *database.Database, gatewayURL string) {
	_, fanout := newTestHub()
	client := bot.NewClient(gatewayURL, "test-key", "google/gemini-2.5-flash")
	h := NewBotHandler(bot.NewService(d, client, fanout, 10))
	r.POST("/functions/chat-bot", h.ChatBot)
}

func stubGateway(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestChatBotReturnsReply(t *testing.T) {
	d := newTestDB(t)
	alice := createTestUser(t, d, "alice", "alice@example.com")
	room := firstRoomFor(t, d, alice.ID, 1)

	srv := stubGateway(t, http.StatusOK, `{"choices":[{"message":{"content":"Great question!"}}]}`)

	r := authedRouter(alice.ID)
	botRoutes(r, d, srv.URL)

	w := doJSON(t, r, http.MethodPost, "/functions/chat-bot", gin.H{
		"roomId":      room.ID.String(),
		"roomTopic":   "Gaming",
		"userMessage": "what should I play?",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Great question!", decodeBody(t, w)["message"])

	// Ответ бота сохранен в комнате
	messages, err := d.GetRoomMessages(room.ID, 10)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.True(t, messages[0].IsBot)
	require.Nil(t, messages[0].UserID)
}

func TestChatBotGatewayFailure(t *testing.T) {
	d := newTestDB(t)
	alice := createTestUser(t, d, "alice", "alice@example.com")
	room := firstRoomFor(t, d, alice.ID, 1)

	srv := stubGateway(t, http.StatusBadGateway, `{"error":"upstream down"}`)

	r := authedRouter(alice.ID)
	botRoutes(r, d, srv.URL)

	w := doJSON(t, r, http.MethodPost, "/functions/chat-bot", gin.H{
		"roomId":      room.ID.String(),
		"roomTopic":   "Gaming",
		"userMessage": "hello",
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, decodeBody(t, w), "error")

	messages, err := d.GetRoomMessages(room.ID, 10)
	require.NoError(t, err)
	require.Empty(t, messages)
}

func TestChatBotInvalidRequest(t *testing.T) {
	d := newTestDB(t)
	alice := createTestUser(t, d, "alice", "alice@example.com")

	srv := stubGateway(t, http.StatusOK, `{}`)

	r := authedRouter(alice.ID)
	botRoutes(r, d, srv.URL)

	w := doJSON(t, r, http.MethodPost, "/functions/chat-bot", gin.H{"roomTopic": "Gaming"})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, decodeBody(t, w), "error")
}
