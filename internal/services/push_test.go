package services

import (
	"testing"
)

func TestHubDeliversToSubscriber(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe(7)
	defer cancel()

	hub.Notify(7, PushPayload{Type: "upvote", Text: "3 upvote on your post."})

	select {
	case payload := <-ch:
		if payload.Type != "upvote" {
			t.Errorf("payload type = %q", payload.Type)
		}
	default:
		t.Fatal("expected a buffered payload")
	}
}

func TestHubIgnoresOtherUsers(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe(1)
	defer cancel()

	hub.Notify(2, PushPayload{Type: "tip", Text: "1 tip on your post."})

	select {
	case payload := <-ch:
		t.Fatalf("unexpected payload %+v", payload)
	default:
	}
}

func TestHubDropsWhenSubscriberIsFull(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe(5)
	defer cancel()

	// 缓冲写满之后继续 Notify 不能阻塞
	for i := 0; i < 100; i++ {
		hub.Notify(5, PushPayload{Type: "comment", Text: "x"})
	}

	drained := 0
	for {
		select {
		case <-ch:
			drained++
			continue
		default:
		}
		break
	}
	if drained == 0 || drained > 8 {
		t.Errorf("drained %d payloads, want between 1 and the buffer size", drained)
	}
}

func TestHubCancelUnsubscribes(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe(9)
	cancel()

	// 注销后 Notify 不应 panic，channel 已关闭
	hub.Notify(9, PushPayload{Type: "upvote", Text: "x"})

	if _, ok := <-ch; ok {
		t.Error("expected closed channel after cancel")
	}
}
