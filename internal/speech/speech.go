// Package speech models voice input as a cancellable listening session
// emitting a stream of events. Only a final transcript should trigger
// classification; interim events are for live preview only. When no
// recognizer is available the assistant degrades to text-only input.
package speech

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

var ErrUnavailable = errors.New("speech recognition unavailable")

type EventKind int

const (
	// EventInterim carries a partial transcript for live preview.
	EventInterim EventKind = iota
	// EventFinal carries the finished transcript; the only event that
	// may trigger classification.
	EventFinal
	// EventError reports a recognition failure; terminal.
	EventError
	// EventEnd marks the session closed without a transcript; terminal.
	EventEnd
)

type Event struct {
	Kind EventKind
	Text string
	Err  error
}

// Recognizer is the platform transcription capability. Listen streams
// events until a terminal event (final, error, end) and then closes
// the channel. Cancelling ctx ends the session.
type Recognizer interface {
	Listen(ctx context.Context) (<-chan Event, error)
}

// Manager enforces the single-session rule: starting a new listening
// session terminates any session still active.
type Manager struct {
	mu         sync.Mutex
	recognizer Recognizer
	cancel     context.CancelFunc
	logger     *zap.Logger
}

func NewManager(recognizer Recognizer, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{recognizer: recognizer, logger: logger}
}

// Available reports whether a recognizer is configured.
func (m *Manager) Available() bool {
	return m.recognizer != nil
}

// Start begins a listening session, terminating any previous one
// first. Returns ErrUnavailable when no recognizer is configured.
func (m *Manager) Start(ctx context.Context) (<-chan Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.recognizer == nil {
		return nil, ErrUnavailable
	}

	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}

	sessionCtx, cancel := context.WithCancel(ctx)
	events, err := m.recognizer.Listen(sessionCtx)
	if err != nil {
		cancel()
		return nil, err
	}

	m.cancel = cancel
	m.logger.Debug("listening session started")
	return events, nil
}

// Stop terminates the active session, if any.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
		m.logger.Debug("listening session stopped")
	}
}

// Simulated is a scripted recognizer for demos and tests: it emits the
// transcript word by word as interim events, then the full transcript
// as final.
type Simulated struct {
	Transcript string
	ChunkDelay time.Duration
}

func (s *Simulated) Listen(ctx context.Context) (<-chan Event, error) {
	words := strings.Fields(s.Transcript)
	// Buffered so a consumer that walks away after cancelling never
	// strands the emitting goroutine.
	events := make(chan Event, len(words)+2)

	go func() {
		defer close(events)

		for i := range words {
			select {
			case <-ctx.Done():
				events <- Event{Kind: EventEnd}
				return
			case <-time.After(s.ChunkDelay):
			}
			events <- Event{Kind: EventInterim, Text: strings.Join(words[:i+1], " ")}
		}

		events <- Event{Kind: EventFinal, Text: s.Transcript}
	}()

	return events, nil
}
