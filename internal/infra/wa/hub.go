package wa

import "sync"

// RelayEvent is what the push relay delivers to a UI client: the event name
// plus the full state snapshot taken at transition time. Because every event
// carries the whole snapshot, a subscriber can never assemble a stale view
// out of partial updates.
type RelayEvent struct {
	Name     string   `json:"event"`
	Snapshot Snapshot `json:"snapshot"`
	Detail   string   `json:"detail,omitempty"`
}

// Hub fans state transitions out to subscribed UI connections. There is no
// history: a subscriber gets the current snapshot on subscribe and deltas
// afterwards. Slow subscribers lose the oldest pending event, never the
// newest.
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[chan RelayEvent]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[chan RelayEvent]struct{})}
}

// Subscribe registers a listener for one session. The returned cancel func
// must be called when the connection goes away.
func (h *Hub) Subscribe(session string) (<-chan RelayEvent, func()) {
	ch := make(chan RelayEvent, 16)

	h.mu.Lock()
	set, ok := h.subs[session]
	if !ok {
		set = make(map[chan RelayEvent]struct{})
		h.subs[session] = set
	}
	set[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if set, ok := h.subs[session]; ok {
			delete(set, ch)
			if len(set) == 0 {
				delete(h.subs, session)
			}
		}
		h.mu.Unlock()
	}

	return ch, cancel
}

// Publish delivers evt to every subscriber of its session.
func (h *Hub) Publish(evt RelayEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs[evt.Snapshot.Session] {
		for {
			select {
			case ch <- evt:
			default:
				// full: drop the oldest pending event and retry
				select {
				case <-ch:
				default:
				}
				continue
			}
			break
		}
	}
}
