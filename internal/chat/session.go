// Package chat implements the conversational engine: one session per
// conversation, an at-most-one pending action confirmation state machine,
// and composition of the assistant's replies.
package chat

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/punchamoorthee/bankmitra/internal/domain"
	"github.com/punchamoorthee/bankmitra/internal/i18n"
	"github.com/punchamoorthee/bankmitra/internal/intent"
	"github.com/punchamoorthee/bankmitra/internal/ledger"
)

var (
	turnsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bankmitra_chat_turns_total",
		Help: "Conversation turns processed, labeled by resolution",
	}, []string{"resolution"})

	actionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bankmitra_chat_actions_total",
		Help: "Confirmed transaction executions, labeled by kind and outcome",
	}, []string{"kind", "outcome"})
)

// Vocabulary carries the configurable token sets the session matches
// against. Confirmation tokens are compared case-insensitively against the
// whole trimmed utterance, never as substrings.
type Vocabulary struct {
	Affirmative []string
	Negative    []string
}

// DefaultVocabulary matches the stock assistant behavior.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Affirmative: []string{"yes", "confirm", "y"},
		Negative:    []string{"no", "cancel", "n"},
	}
}

// Session orchestrates one conversation. It owns the confirmation state
// machine: idle, or exactly one pending action awaiting a yes/no. Turns are
// serialized by the mutex, so a second utterance can never race the
// single-slot pending action.
type Session struct {
	mu        sync.Mutex
	ledger    *ledger.Ledger
	detector  *intent.Detector
	affirm    map[string]bool
	negative  map[string]bool
	pending   *domain.Intent
	messages  []domain.Message
	defaultLg string
	log       *zap.Logger
}

// NewSession wires a session over a ledger. defaultLanguage is used when a
// turn arrives without a language code.
func NewSession(l *ledger.Ledger, d *intent.Detector, vocab Vocabulary, defaultLanguage string, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		ledger:    l,
		detector:  d,
		affirm:    tokenSet(vocab.Affirmative),
		negative:  tokenSet(vocab.Negative),
		defaultLg: defaultLanguage,
		log:       log,
	}
}

func tokenSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[strings.ToLower(strings.TrimSpace(t))] = true
	}
	return set
}

// History returns a copy of the transcript.
func (s *Session) History() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Message(nil), s.messages...)
}

// AwaitingConfirmation reports whether an action is pending.
func (s *Session) AwaitingConfirmation() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// HandleTurn processes one utterance to completion and returns the
// assistant's reply. The user message and the reply are both appended to
// the transcript.
func (s *Session) HandleTurn(ctx context.Context, utterance, language string) domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	if language == "" {
		language = s.defaultLg
	}
	s.appendLocked(domain.RoleUser, utterance, nil)

	text, action, resolution := s.respondLocked(utterance, language)
	turnsTotal.WithLabelValues(resolution).Inc()
	s.log.Info("turn processed",
		zap.String("resolution", resolution),
		zap.String("language", language),
		zap.Bool("awaiting_confirmation", s.pending != nil))

	return s.appendLocked(domain.RoleAssistant, text, action)
}

// respondLocked is the state machine core. The confirmation token check
// takes priority over intent detection whenever an action is pending.
func (s *Session) respondLocked(utterance, language string) (string, *domain.Intent, string) {
	token := strings.ToLower(strings.TrimSpace(utterance))

	if s.pending != nil {
		switch {
		case s.affirm[token]:
			act := s.pending
			s.pending = nil
			return s.executeLocked(act, language), nil, "confirmed"
		case s.negative[token]:
			s.pending = nil
			return i18n.Render(i18n.KeyCancelled, language, nil), nil, "cancelled"
		default:
			// Neither yes nor no: keep the pending action and re-prompt.
			return i18n.Render(i18n.KeyReprompt, language, nil), nil, "reprompt"
		}
	}

	snap := s.ledger.Snapshot()
	if in := s.detector.Detect(utterance, &snap); in != nil {
		if needsBalance(in.Kind) && snap.Balance < in.Amount {
			return i18n.Render(i18n.KeyInsufficient, language, map[string]string{
				"have": i18n.Rupees(snap.Balance),
				"need": i18n.Rupees(in.Amount),
			}), nil, "insufficient"
		}
		s.pending = in
		return s.confirmPrompt(in, language), in, "proposed"
	}

	return s.informational(utterance, language, &snap), nil, "informational"
}

// needsBalance reports whether the intent spends the user's own funds.
// Requesting money has no balance precondition.
func needsBalance(kind domain.IntentKind) bool {
	return kind == domain.IntentSendMoney || kind == domain.IntentPayBill || kind == domain.IntentAddSavings
}

func (s *Session) confirmPrompt(in *domain.Intent, language string) string {
	amount := i18n.Rupees(in.Amount)
	switch in.Kind {
	case domain.IntentSendMoney:
		return i18n.Render(i18n.KeyConfirmSend, language, map[string]string{
			"amount": amount, "recipient": in.RecipientName,
		})
	case domain.IntentPayBill:
		return i18n.Render(i18n.KeyConfirmPayBill, language, map[string]string{
			"amount": amount, "bill": in.BillName,
		})
	case domain.IntentRequestMoney:
		return i18n.Render(i18n.KeyConfirmRequest, language, map[string]string{
			"amount": amount, "recipient": in.RecipientName,
		})
	default:
		return i18n.Render(i18n.KeyConfirmSavings, language, map[string]string{
			"amount": amount,
		})
	}
}

// executeLocked applies a confirmed action against the ledger. Any failure
// (for example a bill removed between detection and confirmation) surfaces
// as a generic error message; the state machine is already back to idle so
// the session is never stuck.
func (s *Session) executeLocked(in *domain.Intent, language string) string {
	amount := i18n.Rupees(in.Amount)
	var err error
	var key i18n.Key
	params := map[string]string{"amount": amount}

	switch in.Kind {
	case domain.IntentSendMoney:
		err = s.ledger.SendMoney(in.RecipientName, in.Amount)
		key = i18n.KeySuccessSend
		params["recipient"] = in.RecipientName
	case domain.IntentPayBill:
		err = s.ledger.PayBill(in.BillID)
		key = i18n.KeySuccessPayBill
		params["bill"] = in.BillName
	case domain.IntentRequestMoney:
		_, err = s.ledger.RequestMoney(in.RecipientName, in.Amount)
		key = i18n.KeySuccessRequest
		params["recipient"] = in.RecipientName
	case domain.IntentAddSavings:
		err = s.ledger.AddToSavings(in.Amount)
		key = i18n.KeySuccessSavings
	}

	if err != nil {
		actionsTotal.WithLabelValues(string(in.Kind), "error").Inc()
		s.log.Warn("confirmed action failed", zap.String("kind", string(in.Kind)), zap.Error(err))
		return i18n.Render(i18n.KeyExecError, language, nil)
	}
	actionsTotal.WithLabelValues(string(in.Kind), "ok").Inc()
	return i18n.Render(key, language, params)
}

func (s *Session) appendLocked(role, text string, action *domain.Intent) domain.Message {
	msg := domain.Message{
		ID:     uuid.NewString(),
		Role:   role,
		Text:   text,
		Action: action,
	}
	s.messages = append(s.messages, msg)
	return msg
}
