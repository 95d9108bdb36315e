package assistant

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one entry in the conversation transcript. Turns are appended
// only, never edited or removed within a session.
type Turn struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Actions   []Action  `json:"-"`
}

// Session holds the ordered transcript and the open/closed state of
// the assistant surface. Clock and id generation are injectable so
// behavior is testable deterministically. Safe for concurrent use; the
// HTTP surface appends and reads from per-request goroutines.
type Session struct {
	mu     sync.Mutex
	turns  []Turn
	opened bool
	now    func() time.Time
	newID  func() string
}

type SessionOption func(*Session)

func SessionClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

func SessionIDs(newID func() string) SessionOption {
	return func(s *Session) { s.newID = newID }
}

func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

const openingGreeting = "Hello! I'm your shopping assistant. I can help you find products, manage your cart, and answer questions. Try asking me anything!"

// Open marks the assistant surface opened. The first open of an empty
// transcript seeds the one-time greeting turn.
func (s *Session) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.opened = true
	if len(s.turns) == 0 {
		s.append(RoleAssistant, openingGreeting, nil)
	}
}

func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opened = false
}

func (s *Session) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opened
}

// Turns returns a copy of the transcript in order.
func (s *Session) Turns() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.turns)
}

// Turn finds a transcript entry by id.
func (s *Session) Turn(id string) (Turn, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.turns {
		if t.ID == id {
			return t, true
		}
	}
	return Turn{}, false
}

func (s *Session) AppendUser(content string) Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.append(RoleUser, content, nil)
}

func (s *Session) AppendAssistant(content string, actions []Action) Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.append(RoleAssistant, content, actions)
}

// append requires s.mu held.
func (s *Session) append(role Role, content string, actions []Action) Turn {
	turn := Turn{
		ID:        s.newID(),
		Role:      role,
		Content:   content,
		CreatedAt: s.now(),
		Actions:   actions,
	}
	s.turns = append(s.turns, turn)
	return turn
}
