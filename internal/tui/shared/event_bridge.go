package shared

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/magnify/internal/transition"
)

// Exported constants.
const (
	// BridgeBuffer is the number of undelivered transition events the bridge holds before it
	// drops new ones. Other messages are always kept.
	BridgeBuffer = 100
)

// EventBridge adapts controller events and callbacks to bubble tea messages.
// It implements transition.EventEmitter. Sends never block, so it is safe to use while the
// controller lock is held.
type EventBridge struct {
	mu     sync.Mutex
	queue  []tea.Msg
	events int
	ready  chan struct{}
	closed bool
}

// NewEventBridge creates a new event bridge.
func NewEventBridge() *EventBridge {
	return &EventBridge{
		ready: make(chan struct{}, 1),
	}
}

// Emit implements transition.EventEmitter.
func (b *EventBridge) Emit(event transition.Event) {
	b.Send(TransitionEventMsg{Event: event})
}

// Send queues msg for the TUI. Once BridgeBuffer transition events are waiting, further events
// are dropped; request results and other messages are always queued. Sends after Close are
// dropped.
func (b *EventBridge) Send(msg tea.Msg) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	if _, isEvent := msg.(TransitionEventMsg); isEvent {
		if b.events >= BridgeBuffer {
			return
		}
		b.events++
	}
	b.queue = append(b.queue, msg)

	select {
	case b.ready <- struct{}{}:
	default:
	}
}

// Next returns the oldest queued message without waiting.
func (b *EventBridge) Next() (tea.Msg, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.queue) == 0 {
		return nil, false
	}

	msg := b.queue[0]
	b.queue[0] = nil
	b.queue = b.queue[1:]
	if _, isEvent := msg.(TransitionEventMsg); isEvent {
		b.events--
	}
	return msg, true
}

// Len returns the number of queued messages.
func (b *EventBridge) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.queue)
}

// ListenCmd returns a tea.Cmd that blocks until a message is queued.
// Issue it again after each message to keep listening. Once the bridge is closed and drained the
// command returns nil.
func (b *EventBridge) ListenCmd() tea.Cmd {
	return func() tea.Msg {
		for {
			if msg, ok := b.Next(); ok {
				return msg
			}
			if _, open := <-b.ready; !open {
				if msg, ok := b.Next(); ok {
					return msg
				}
				return nil
			}
		}
	}
}

// Close stops the bridge. Messages already queued can still be read.
func (b *EventBridge) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.closed {
		b.closed = true
		close(b.ready)
	}
}
