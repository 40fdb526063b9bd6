package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/moodlingo/moodlingo/pkg/types"
)

func TestEntryNotifierFanout(t *testing.T) {
	n := NewEntryNotifier()

	ch1, cancel1 := n.Subscribe()
	ch2, cancel2 := n.Subscribe()
	defer cancel1()
	defer cancel2()

	n.Publish(types.EntryEvent{Op: types.EntryCreated, UserID: "u1", ID: "e1"})

	for _, ch := range []<-chan types.EntryEvent{ch1, ch2} {
		select {
		case ev := <-ch:
			assert.Equal(t, types.EntryCreated, ev.Op)
			assert.Equal(t, "e1", ev.ID)
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive event")
		}
	}
}

func TestEntryNotifierCancelClosesChannel(t *testing.T) {
	n := NewEntryNotifier()

	ch, cancel := n.Subscribe()
	cancel()

	_, open := <-ch
	assert.False(t, open)

	// publish after cancel must not panic
	n.Publish(types.EntryEvent{Op: types.EntryDeleted, UserID: "u1", ID: "e1"})

	// cancel is idempotent
	cancel()
}

func TestEntryNotifierSlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	n := NewEntryNotifier()

	ch, cancel := n.Subscribe()
	defer cancel()

	// fill the buffer and keep going, the publisher must never block
	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			n.Publish(types.EntryEvent{Op: types.EntryCreated, UserID: "u1", ID: "e"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second * 2):
		t.Fatal("publisher blocked on slow subscriber")
	}

	// the subscriber still sees the buffered prefix
	select {
	case ev := <-ch:
		assert.Equal(t, "u1", ev.UserID)
	default:
		t.Fatal("expected buffered event")
	}
}
