package store

import (
	"sync"

	"github.com/moodlingo/moodlingo/pkg/types"
)

// EntryNotifier is the push side of the live list view: the sql store
// publishes an EntryEvent after every successful create/delete and every
// mounted subscriber receives it on its own channel. Slow subscribers drop
// events rather than block the write path; the list stays eventually
// consistent because a later event supersedes a dropped one.
type EntryNotifier struct {
	mu   sync.RWMutex
	subs map[int]chan types.EntryEvent
	next int
}

func NewEntryNotifier() *EntryNotifier {
	return &EntryNotifier{
		subs: make(map[int]chan types.EntryEvent),
	}
}

// Subscribe returns a channel of entry events and a cancel function that
// must be called when the view unmounts.
func (n *EntryNotifier) Subscribe() (<-chan types.EntryEvent, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.next
	n.next++
	ch := make(chan types.EntryEvent, 64)
	n.subs[id] = ch

	return ch, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if c, ok := n.subs[id]; ok {
			delete(n.subs, id)
			close(c)
		}
	}
}

func (n *EntryNotifier) Publish(event types.EntryEvent) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for _, ch := range n.subs {
		select {
		case ch <- event:
		default:
		}
	}
}
