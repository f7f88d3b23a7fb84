package websocket

import (
	"path/filepath"
	"testing"
	"time"

	"ai-chatapp-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T) *Hub {
	t.Helper()
	log := logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "hub.log"))
	h := NewHub(nil, log)
	go h.Run()
	return h
}

func connectedClients(h *Hub, userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

func TestSendDeliversToConnectedClient(t *testing.T) {
	h := newTestHub(t)
	userID := uuid.New()
	client := &Client{Hub: h, UserID: userID, Send: make(chan []byte, 8)}
	h.register <- client

	require.Eventually(t, func() bool {
		return connectedClients(h, userID) == 1
	}, time.Second, 5*time.Millisecond)

	h.Send(userID, Notification{Type: "chat_message_exchanged"})

	select {
	case data := <-client.Send:
		assert.Contains(t, string(data), "chat_message_exchanged")
	case <-time.After(time.Second):
		t.Fatal("no delivery to connected client")
	}
}

func TestSlowClientIsDroppedWithoutPanic(t *testing.T) {
	h := newTestHub(t)
	userID := uuid.New()

	// Unbuffered channel with no reader: every push hits the full-buffer
	// branch.
	slow := &Client{Hub: h, UserID: userID, Send: make(chan []byte)}
	h.register <- slow

	require.Eventually(t, func() bool {
		return connectedClients(h, userID) == 1
	}, time.Second, 5*time.Millisecond)

	h.sendLocal(userID, []byte("first"))

	// The hub unregisters the client instead of crashing on a double
	// channel close.
	require.Eventually(t, func() bool {
		return connectedClients(h, userID) == 0
	}, time.Second, 5*time.Millisecond)

	// Further pushes to the same user are a no-op.
	h.sendLocal(userID, []byte("second"))

	// The unregister branch closed Send exactly once.
	_, open := <-slow.Send
	assert.False(t, open)
}
