package assistant

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixedSession() *Session {
	var seq int
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return NewSession(
		SessionClock(func() time.Time {
			seq++
			return base.Add(time.Duration(seq) * time.Second)
		}),
		SessionIDs(func() string {
			return fmt.Sprintf("turn-%d", seq+1)
		}),
	)
}

func TestSessionGreetingIsSeededOnce(t *testing.T) {
	s := newFixedSession()

	s.Open()
	require.Equal(t, 1, s.Len())
	assert.Equal(t, RoleAssistant, s.Turns()[0].Role)
	assert.Equal(t, openingGreeting, s.Turns()[0].Content)

	// Reopening an already-seeded session adds nothing.
	s.Close()
	s.Open()
	assert.Equal(t, 1, s.Len())
}

func TestSessionAppendOnlyOrdering(t *testing.T) {
	s := newFixedSession()
	s.Open()
	s.AppendUser("find earbuds")
	s.AppendAssistant("Here you go.", nil)

	turns := s.Turns()
	require.Len(t, turns, 3)
	assert.Equal(t, RoleAssistant, turns[0].Role)
	assert.Equal(t, RoleUser, turns[1].Role)
	assert.Equal(t, "find earbuds", turns[1].Content)
	assert.Equal(t, RoleAssistant, turns[2].Role)

	for i := 1; i < len(turns); i++ {
		assert.True(t, turns[i].CreatedAt.After(turns[i-1].CreatedAt))
	}
}

func TestSessionTurnsReturnsACopy(t *testing.T) {
	s := newFixedSession()
	s.AppendUser("hello")

	turns := s.Turns()
	turns[0].Content = "mutated"

	assert.Equal(t, "hello", s.Turns()[0].Content)
}

func TestSessionTurnLookup(t *testing.T) {
	s := newFixedSession()
	turn := s.AppendUser("hello")

	got, ok := s.Turn(turn.ID)
	require.True(t, ok)
	assert.Equal(t, turn.Content, got.Content)

	_, ok = s.Turn("missing")
	assert.False(t, ok)
}

func TestSessionConcurrentAppendsAndReads(t *testing.T) {
	s := NewSession()
	s.Open()

	const writers = 8
	const perWriter = 100

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				s.AppendUser("add rice to my cart")
				s.Turns()
			}
		}()
	}
	wg.Wait()

	// Greeting plus every append, no turn lost or duplicated.
	turns := s.Turns()
	require.Len(t, turns, 1+writers*perWriter)

	seen := make(map[string]bool, len(turns))
	for _, turn := range turns {
		assert.False(t, seen[turn.ID], "duplicate turn id %s", turn.ID)
		seen[turn.ID] = true
	}
}

func TestSessionOpenClose(t *testing.T) {
	s := newFixedSession()
	assert.False(t, s.IsOpen())
	s.Open()
	assert.True(t, s.IsOpen())
	s.Close()
	assert.False(t, s.IsOpen())
}
