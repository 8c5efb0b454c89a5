package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// mailbox holds the latest value pushed by a store subscription. Store
// callbacks run inside the mutating call, often from Update itself, so
// they must never block on the program; put only records the value and
// signals a waiting command.
type mailbox[T any] struct {
	mu     sync.Mutex
	value  T
	full   bool
	signal chan struct{}
}

func newMailbox[T any]() *mailbox[T] {
	return &mailbox[T]{signal: make(chan struct{}, 1)}
}

func (b *mailbox[T]) put(v T) {
	b.mu.Lock()
	b.value = v
	b.full = true
	b.mu.Unlock()

	select {
	case b.signal <- struct{}{}:
	default:
	}
}

func (b *mailbox[T]) take() (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var zero T
	if !b.full {
		return zero, false
	}
	v := b.value
	b.value = zero
	b.full = false
	return v, true
}

// wait blocks until a value is available and wraps it into a message.
func (b *mailbox[T]) wait(wrap func(T) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		for {
			<-b.signal
			if v, ok := b.take(); ok {
				return wrap(v)
			}
		}
	}
}
