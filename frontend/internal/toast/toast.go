// Package toast carries short user notifications from a handler to the
// rendered page, either within one request or across a redirect.
package toast

import (
	"context"
	"sync"
)

type Variant string

const (
	Default     Variant = "default"
	Destructive Variant = "destructive"
)

type Toast struct {
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	Variant     Variant `json:"variant,omitempty"`
}

func (t Toast) IsDestructive() bool {
	return t.Variant == Destructive
}

// Notifier is the notify(title, description, severity) contract.
type Notifier interface {
	Notify(t Toast)
}

// Queue collects the toasts raised while serving one request.
type Queue struct {
	mu     sync.Mutex
	toasts []Toast
}

func (q *Queue) Notify(t Toast) {
	if t.Variant == "" {
		t.Variant = Default
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.toasts = append(q.toasts, t)
}

// Drain returns queued toasts and empties the queue.
func (q *Queue) Drain() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.toasts
	q.toasts = nil
	return out
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.toasts)
}

type ctxKey struct{}

// WithQueue attaches a fresh queue to ctx.
func WithQueue(ctx context.Context) (context.Context, *Queue) {
	q := &Queue{}
	return context.WithValue(ctx, ctxKey{}, q), q
}

// FromContext returns the request queue, or nil when none was attached.
func FromContext(ctx context.Context) *Queue {
	q, _ := ctx.Value(ctxKey{}).(*Queue)
	return q
}
