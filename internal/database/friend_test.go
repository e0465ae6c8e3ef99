package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/thereayou/chattr/internal/models"
)

func TestFindActiveRelationshipBothDirections(t *testing.T) {
	d := newTestDB(t)

	alice := createTestUser(t, d, "alice", "alice@example.com")
	bob := createTestUser(t, d, "bob", "bob@example.com")

	require.NoError(t, d.CreateFriendRequest(&models.Friend{
		SenderID:   alice.ID,
		ReceiverID: bob.ID,
		Status:     models.FriendPending,
		CreatedAt:  time.Now(),
	}))

	// Пара неупорядоченная: запись видна с обеих сторон
	existing, err := d.FindActiveRelationship(alice.ID, bob.ID)
	require.NoError(t, err)
	require.NotNil(t, existing)
	require.Equal(t, models.FriendPending, existing.Status)

	existing, err = d.FindActiveRelationship(bob.ID, alice.ID)
	require.NoError(t, err)
	require.NotNil(t, existing)
}

func TestDeclinedRequestDoesNotBlock(t *testing.T) {
	d := newTestDB(t)

	alice := createTestUser(t, d, "alice", "alice@example.com")
	bob := createTestUser(t, d, "bob", "bob@example.com")

	friend := &models.Friend{
		SenderID:   alice.ID,
		ReceiverID: bob.ID,
		Status:     models.FriendPending,
		CreatedAt:  time.Now(),
	}
	require.NoError(t, d.CreateFriendRequest(friend))
	require.NoError(t, d.UpdateFriendStatus(friend.ID, models.FriendDeclined))

	existing, err := d.FindActiveRelationship(alice.ID, bob.ID)
	require.NoError(t, err)
	require.Nil(t, existing)
}

func TestFriendLists(t *testing.T) {
	d := newTestDB(t)

	alice := createTestUser(t, d, "alice", "alice@example.com")
	bob := createTestUser(t, d, "bob", "bob@example.com")
	carol := createTestUser(t, d, "carol", "carol@example.com")

	accepted := &models.Friend{SenderID: alice.ID, ReceiverID: bob.ID, Status: models.FriendPending, CreatedAt: time.Now()}
	require.NoError(t, d.CreateFriendRequest(accepted))
	require.NoError(t, d.UpdateFriendStatus(accepted.ID, models.FriendAccepted))

	pending := &models.Friend{SenderID: carol.ID, ReceiverID: alice.ID, Status: models.FriendPending, CreatedAt: time.Now()}
	require.NoError(t, d.CreateFriendRequest(pending))

	friends, err := d.ListFriends(alice.ID)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	require.NotNil(t, friends[0].Receiver)
	require.Equal(t, "bob", friends[0].Receiver.Username)

	incoming, err := d.ListIncomingRequests(alice.ID)
	require.NoError(t, err)
	require.Len(t, incoming, 1)
	require.Equal(t, "carol", incoming[0].Sender.Username)

	outgoing, err := d.ListOutgoingRequests(carol.ID)
	require.NoError(t, err)
	require.Len(t, outgoing, 1)
	require.Equal(t, "alice", outgoing[0].Receiver.Username)
}

func TestCancelDeletesRow(t *testing.T) {
	d := newTestDB(t)

	alice := createTestUser(t, d, "alice", "alice@example.com")
	bob := createTestUser(t, d, "bob", "bob@example.com")

	friend := &models.Friend{SenderID: alice.ID, ReceiverID: bob.ID, Status: models.FriendPending, CreatedAt: time.Now()}
	require.NoError(t, d.CreateFriendRequest(friend))
	require.NoError(t, d.DeleteFriendRequest(friend.ID))

	_, err := d.GetFriendRequest(friend.ID.String())
	require.Error(t, err)

	existing, err := d.FindActiveRelationship(alice.ID, bob.ID)
	require.NoError(t, err)
	require.Nil(t, existing)
}
