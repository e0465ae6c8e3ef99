package websocket

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestClient(hub *Hub, userID uuid.UUID) *Client {
	return &Client{
		ID:     uuid.New(),
		UserID: userID,
		Send:   make(chan []byte, 16),
		Rooms:  make(map[uuid.UUID]bool),
		Hub:    hub,
	}
}

func TestJoinLeaveOnlineCount(t *testing.T) {
	hub := NewHub()
	roomID := uuid.New()

	alice := newTestClient(hub, uuid.New())
	bob := newTestClient(hub, uuid.New())
	hub.registerClient(alice)
	hub.registerClient(bob)

	hub.JoinRoom(alice, roomID)
	hub.JoinRoom(bob, roomID)
	require.Equal(t, 2, hub.OnlineCount(roomID))
	require.True(t, alice.IsInRoom(roomID))

	hub.LeaveRoom(alice, roomID)
	require.Equal(t, 1, hub.OnlineCount(roomID))
	require.False(t, alice.IsInRoom(roomID))
}

func TestOnlineCountUniquePerUser(t *testing.T) {
	hub := NewHub()
	roomID := uuid.New()
	userID := uuid.New()

	// Два соединения одного пользователя считаются одним
	first := newTestClient(hub, userID)
	second := newTestClient(hub, userID)
	hub.registerClient(first)
	hub.registerClient(second)

	hub.JoinRoom(first, roomID)
	hub.JoinRoom(second, roomID)
	require.Equal(t, 1, hub.OnlineCount(roomID))
}

func TestBroadcastEventReachesOnlySubscribers(t *testing.T) {
	hub := NewHub()
	roomID := uuid.New()

	subscriber := newTestClient(hub, uuid.New())
	outsider := newTestClient(hub, uuid.New())
	hub.registerClient(subscriber)
	hub.registerClient(outsider)
	hub.JoinRoom(subscriber, roomID)

	hub.BroadcastEvent(roomID, TypeMessage, map[string]string{"content": "hi"})

	select {
	case raw := <-subscriber.Send:
		var msg Message
		require.NoError(t, json.Unmarshal(raw, &msg))
		require.Equal(t, TypeMessage, msg.Type)
		require.Equal(t, roomID, *msg.RoomID)
	default:
		t.Fatal("subscriber did not receive the event")
	}

	select {
	case <-outsider.Send:
		t.Fatal("outsider received an event for a room it did not join")
	default:
	}
}

func TestPresenceSnapshotOnJoin(t *testing.T) {
	hub := NewHub()
	roomID := uuid.New()

	first := newTestClient(hub, uuid.New())
	hub.registerClient(first)
	hub.JoinRoom(first, roomID)

	// Первому участнику тоже приходит снимок присутствия
	raw := <-first.Send
	var msg Message
	require.NoError(t, json.Unmarshal(raw, &msg))
	require.Equal(t, TypePresence, msg.Type)

	var payload map[string]int
	require.NoError(t, json.Unmarshal(msg.Data, &payload))
	require.Equal(t, 1, payload["online"])
}

func TestUnregisterRemovesFromRooms(t *testing.T) {
	hub := NewHub()
	roomID := uuid.New()

	client := newTestClient(hub, uuid.New())
	hub.registerClient(client)
	hub.JoinRoom(client, roomID)

	hub.unregisterClient(client)
	require.Equal(t, 0, hub.OnlineCount(roomID))
}
