package mem

import (
	"sync"
	"time"
)

// QuizSessionStore keeps per-session quiz answers in memory. Answers are
// written one question at a time as the user progresses; the whole session
// expires after its TTL unless refreshed by a new answer.
type QuizSessionStore interface {
	SetAnswer(sessionID string, questionID int, answer string)

	// Answers returns a copy of the session's answers, or ok=false when the
	// session is missing or expired.
	Answers(sessionID string) (map[int]string, bool)

	Reset(sessionID string)
	Delete(sessionID string)
}

type sessionEntry struct {
	answers   map[int]string
	expiresAt time.Time
}

type QuizSessions struct {
	mu   sync.RWMutex
	ttl  time.Duration
	data map[string]sessionEntry
}

func NewQuizSessions(ttl time.Duration) *QuizSessions {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &QuizSessions{
		ttl:  ttl,
		data: make(map[string]sessionEntry),
	}
}

func (s *QuizSessions) SetAnswer(sessionID string, questionID int, answer string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[sessionID]
	if !ok || time.Now().After(e.expiresAt) {
		e = sessionEntry{answers: make(map[int]string)}
	}
	e.answers[questionID] = answer
	e.expiresAt = time.Now().Add(s.ttl)
	s.data[sessionID] = e
}

func (s *QuizSessions) Answers(sessionID string) (map[int]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[sessionID]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		return nil, false
	}

	out := make(map[int]string, len(e.answers))
	for k, v := range e.answers {
		out[k] = v
	}
	return out, true
}

func (s *QuizSessions) Reset(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.data[sessionID]; ok {
		e.answers = make(map[int]string)
		e.expiresAt = time.Now().Add(s.ttl)
		s.data[sessionID] = e
	}
}

func (s *QuizSessions) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
}
