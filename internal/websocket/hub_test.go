package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"
	"testing"
	"time"
)

// mockClient creates a Client with a send channel but no real connection.
func mockClient(hub *Hub, userID int64) *Client {
	return &Client{
		hub:    hub,
		conn:   nil,
		userID: userID,
		send:   make(chan []byte, sendBufferSize),
	}
}

func TestRegisterUnregister(t *testing.T) {
	hub := NewHub(slog.Default())

	c1 := mockClient(hub, 1)
	c2 := mockClient(hub, 2)

	hub.Register(c1)
	hub.Register(c2)

	if got := hub.ClientCount(); got != 2 {
		t.Fatalf("expected 2 clients, got %d", got)
	}
	if got := hub.UserClientCount(1); got != 1 {
		t.Fatalf("expected 1 client for user 1, got %d", got)
	}

	hub.Unregister(c1)

	if got := hub.ClientCount(); got != 1 {
		t.Fatalf("expected 1 client after unregister, got %d", got)
	}

	hub.Unregister(c2)

	if got := hub.ClientCount(); got != 0 {
		t.Fatalf("expected 0 clients, got %d", got)
	}
}

func TestDoubleUnregister(t *testing.T) {
	hub := NewHub(slog.Default())
	c := mockClient(hub, 1)
	hub.Register(c)
	hub.Unregister(c)
	// Should not panic
	hub.Unregister(c)

	if got := hub.ClientCount(); got != 0 {
		t.Fatalf("expected 0 clients, got %d", got)
	}
}

func TestNotifyUserReachesAllTabs(t *testing.T) {
	hub := NewHub(slog.Default())

	tab1 := mockClient(hub, 1)
	tab2 := mockClient(hub, 1)
	hub.Register(tab1)
	hub.Register(tab2)

	msg := NewMessage("list_item", "created", 42, map[string]any{"product_id": float64(7)})
	hub.NotifyUser(1, msg)

	for _, c := range []*Client{tab1, tab2} {
		select {
		case data := <-c.send:
			var got Message
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.Type != "list_item_created" {
				t.Errorf("expected type list_item_created, got %s", got.Type)
			}
			if got.ID != 42 {
				t.Errorf("expected id 42, got %d", got.ID)
			}
		case <-time.After(100 * time.Millisecond):
			t.Fatal("timeout waiting for message")
		}
	}

	hub.Unregister(tab1)
	hub.Unregister(tab2)
}

func TestNotifyUserScopedToUser(t *testing.T) {
	hub := NewHub(slog.Default())

	mine := mockClient(hub, 1)
	theirs := mockClient(hub, 2)
	hub.Register(mine)
	hub.Register(theirs)

	hub.NotifyUser(1, NewMessage("membership", "saved", 3, nil))

	select {
	case <-mine.send:
	case <-time.After(100 * time.Millisecond):
		t.Fatal("owner did not receive notification")
	}

	select {
	case <-theirs.send:
		t.Fatal("notification leaked to another user")
	default:
	}

	hub.Unregister(mine)
	hub.Unregister(theirs)
}

func TestNotifyUserEmptyHub(t *testing.T) {
	hub := NewHub(slog.Default())
	// Should not panic
	hub.NotifyUser(1, NewMessage("receipt", "deleted", 1, nil))
}

func TestNotifyUserFullBuffer(t *testing.T) {
	hub := NewHub(slog.Default())

	c := mockClient(hub, 1)
	hub.Register(c)

	// Fill the send buffer
	for i := 0; i < sendBufferSize; i++ {
		hub.NotifyUser(1, NewMessage("test", "fill", int64(i), nil))
	}

	// This should drop the message, not panic or block
	hub.NotifyUser(1, NewMessage("test", "dropped", 999, nil))

	// Drain to verify buffer was full
	count := 0
	for {
		select {
		case <-c.send:
			count++
		default:
			goto done
		}
	}
done:
	if count != sendBufferSize {
		t.Errorf("expected %d messages, got %d", sendBufferSize, count)
	}

	hub.Unregister(c)
}

func TestNewMessage(t *testing.T) {
	msg := NewMessage("list_item", "updated", 5, nil)
	if msg.Type != "list_item_updated" {
		t.Errorf("expected type list_item_updated, got %s", msg.Type)
	}
	if msg.Entity != "list_item" {
		t.Errorf("expected entity list_item, got %s", msg.Entity)
	}
	if msg.Action != "updated" {
		t.Errorf("expected action updated, got %s", msg.Action)
	}
	if msg.ID != 5 {
		t.Errorf("expected id 5, got %d", msg.ID)
	}
}

func TestConcurrentAccess(t *testing.T) {
	hub := NewHub(slog.Default())
	var wg sync.WaitGroup

	// Spawn goroutines that register, notify, and unregister concurrently
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			c := mockClient(hub, userID)
			hub.Register(c)
			hub.NotifyUser(userID, NewMessage("test", "concurrent", 0, nil))
			// Drain any messages
			for {
				select {
				case <-c.send:
				default:
					hub.Unregister(c)
					return
				}
			}
		}(int64(i % 4))
	}

	wg.Wait()

	if got := hub.ClientCount(); got != 0 {
		t.Errorf("expected 0 clients after concurrent test, got %d", got)
	}
}
