// Package assistant implements the storefront's command interpreter: a
// rule-based classifier that maps free-form utterances to replies and
// suggested cart, search and navigation actions, plus the conversation
// session those replies are recorded in.
package assistant

import (
	"fmt"

	"go.uber.org/zap"
)

// Assistant ties the classifier, session and dispatcher together into
// the surface the UI (or HTTP/CLI layer) talks to.
type Assistant struct {
	classifier *Classifier
	session    *Session
	dispatcher *Dispatcher
	cart       CartService
	logger     *zap.Logger
}

func New(classifier *Classifier, session *Session, dispatcher *Dispatcher, cart CartService, logger *zap.Logger) *Assistant {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assistant{
		classifier: classifier,
		session:    session,
		dispatcher: dispatcher,
		cart:       cart,
		logger:     logger,
	}
}

func (a *Assistant) Session() *Session {
	return a.session
}

// HandleMessage records the user's utterance, classifies it against
// the current cart snapshot, and records the reply. When the reply
// carries an auto-search, the search collaborator runs immediately.
func (a *Assistant) HandleMessage(text string) Turn {
	a.session.AppendUser(text)

	resp := a.classifier.Respond(Request{
		Utterance: text,
		Cart:      a.cart.Snapshot(),
	})

	a.logger.Debug("classified utterance",
		zap.String("intent", resp.Intent),
		zap.Int("actions", len(resp.Actions)))

	if resp.AutoSearch != "" {
		a.dispatcher.search.Run(resp.AutoSearch)
	}

	return a.session.AppendAssistant(resp.Reply, resp.Actions)
}

// Activate dispatches the index-th action offered on the identified
// turn. Activating the same action twice re-applies the mutation.
func (a *Assistant) Activate(turnID string, actionIndex int) error {
	turn, ok := a.session.Turn(turnID)
	if !ok {
		return fmt.Errorf("turn %q not found", turnID)
	}
	if actionIndex < 0 || actionIndex >= len(turn.Actions) {
		return fmt.Errorf("turn %q has no action %d", turnID, actionIndex)
	}
	return a.dispatcher.Dispatch(a.session, turn.Actions[actionIndex])
}
