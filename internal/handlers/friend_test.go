package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/thereayou/chattr/internal/database"
	"github.com/thereayou/chattr/internal/models"
)

func friendRoutes(r *gin.Engine, d *database.Database) {
	h := NewFriendHandler(d)
	r.GET("/friends", h.List)
	r.GET("/friends/requests", h.ListRequests)
	r.POST("/friends/requests", h.SendRequest)
	r.POST("/friends/requests/:id/accept", h.Accept)
	r.POST("/friends/requests/:id/decline", h.Decline)
	r.DELETE("/friends/requests/:id", h.Cancel)
}

func TestSendRequestUserNotFound(t *testing.T) {
	d := newTestDB(t)
	alice := createTestUser(t, d, "alice", "alice@example.com")

	r := authedRouter(alice.ID)
	friendRoutes(r, d)

	w := doJSON(t, r, http.MethodPost, "/friends/requests", gin.H{"username": "ghost"})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "User not found", decodeBody(t, w)["error"])

	// Строка не вставлена
	outgoing, err := d.ListOutgoingRequests(alice.ID)
	require.NoError(t, err)
	require.Empty(t, outgoing)
}

func TestSendRequestToSelf(t *testing.T) {
	d := newTestDB(t)
	alice := createTestUser(t, d, "alice", "alice@example.com")

	r := authedRouter(alice.ID)
	friendRoutes(r, d)

	w := doJSON(t, r, http.MethodPost, "/friends/requests", gin.H{"username": "alice"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "You cannot add yourself", decodeBody(t, w)["error"])
}

func TestFriendRequestStateMachine(t *testing.T) {
	d := newTestDB(t)
	alice := createTestUser(t, d, "alice", "alice@example.com")
	bob := createTestUser(t, d, "bob", "bob@example.com")

	aliceR := authedRouter(alice.ID)
	friendRoutes(aliceR, d)
	bobR := authedRouter(bob.ID)
	friendRoutes(bobR, d)

	// alice -> bob
	w := doJSON(t, aliceR, http.MethodPost, "/friends/requests", gin.H{"username": "bob"})
	require.Equal(t, http.StatusCreated, w.Code)
	requestID := decodeBody(t, w)["id"].(string)

	// Повторный запрос, пока висит pending
	w = doJSON(t, aliceR, http.MethodPost, "/friends/requests", gin.H{"username": "bob"})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "Request already pending", decodeBody(t, w)["error"])

	// Встречный запрос от bob тоже блокируется
	w = doJSON(t, bobR, http.MethodPost, "/friends/requests", gin.H{"username": "alice"})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "Request already pending", decodeBody(t, w)["error"])

	// Принять может только получатель
	w = doJSON(t, aliceR, http.MethodPost, "/friends/requests/"+requestID+"/accept", nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, bobR, http.MethodPost, "/friends/requests/"+requestID+"/accept", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Запрос после принятия
	w = doJSON(t, aliceR, http.MethodPost, "/friends/requests", gin.H{"username": "bob"})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "You are already friends", decodeBody(t, w)["error"])

	// Друзья видны с обеих сторон
	for _, router := range []*gin.Engine{aliceR, bobR} {
		w = doJSON(t, router, http.MethodGet, "/friends", nil)
		require.Equal(t, http.StatusOK, w.Code)
		friends := decodeBody(t, w)["friends"].([]interface{})
		require.Len(t, friends, 1)
	}
}

func TestDeclineAllowsNewRequest(t *testing.T) {
	d := newTestDB(t)
	alice := createTestUser(t, d, "alice", "alice@example.com")
	bob := createTestUser(t, d, "bob", "bob@example.com")

	aliceR := authedRouter(alice.ID)
	friendRoutes(aliceR, d)
	bobR := authedRouter(bob.ID)
	friendRoutes(bobR, d)

	w := doJSON(t, aliceR, http.MethodPost, "/friends/requests", gin.H{"username": "bob"})
	require.Equal(t, http.StatusCreated, w.Code)
	requestID := decodeBody(t, w)["id"].(string)

	w = doJSON(t, bobR, http.MethodPost, "/friends/requests/"+requestID+"/decline", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Отклоненный запрос не блокирует новый
	w = doJSON(t, aliceR, http.MethodPost, "/friends/requests", gin.H{"username": "bob"})
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestCancelOutgoingRequest(t *testing.T) {
	d := newTestDB(t)
	alice := createTestUser(t, d, "alice", "alice@example.com")
	bob := createTestUser(t, d, "bob", "bob@example.com")

	aliceR := authedRouter(alice.ID)
	friendRoutes(aliceR, d)
	bobR := authedRouter(bob.ID)
	friendRoutes(bobR, d)

	w := doJSON(t, aliceR, http.MethodPost, "/friends/requests", gin.H{"username": "bob"})
	require.Equal(t, http.StatusCreated, w.Code)
	requestID := decodeBody(t, w)["id"].(string)

	// Отменить чужой запрос нельзя
	w = doJSON(t, bobR, http.MethodDelete, "/friends/requests/"+requestID, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, aliceR, http.MethodDelete, "/friends/requests/"+requestID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, err := d.GetFriendRequest(requestID)
	require.Error(t, err)
}

func TestAcceptNonPendingRequest(t *testing.T) {
	d := newTestDB(t)
	alice := createTestUser(t, d, "alice", "alice@example.com")
	bob := createTestUser(t, d, "bob", "bob@example.com")

	bobR := authedRouter(bob.ID)
	friendRoutes(bobR, d)

	friend := &models.Friend{SenderID: alice.ID, ReceiverID: bob.ID, Status: models.FriendDeclined}
	require.NoError(t, d.CreateFriendRequest(friend))

	w := doJSON(t, bobR, http.MethodPost, "/friends/requests/"+friend.ID.String()+"/accept", nil)
	require.Equal(t, http.StatusConflict, w.Code)
}
