package services

import "sync"

type EventType string

const (
	EventCartUpdated        EventType = "cartUpdated"
	EventOrderCreated       EventType = "newOrder"
	EventOrderStatusChanged EventType = "orderStatus"
)

type Event struct {
	Type    EventType   `json:"event"`
	User_id string      `json:"user_id"`
	Payload interface{} `json:"payload"`
}

// Notifier fans change events out to subscribers. Slow subscribers are
// skipped rather than blocking a mutation path.
type Notifier struct {
	mu          sync.Mutex
	subscribers []chan Event
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) Subscribe() <-chan Event {
	ch := make(chan Event, 64)
	n.mu.Lock()
	n.subscribers = append(n.subscribers, ch)
	n.mu.Unlock()
	return ch
}

func (n *Notifier) Publish(event Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}
