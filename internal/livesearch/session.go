// Package livesearch debounces keystrokes into searches for interactive
// front ends. Only the latest query is ever reported.
package livesearch

import (
	"context"
	"strings"
	"sync"
	"time"

	"shopdrive/internal/domain"
)

const DefaultDelay = 300 * time.Millisecond

type Searcher interface {
	SearchAll(ctx context.Context, q string, limit int) ([]domain.SearchResult, error)
}

// Update is one delivered result set. Err is set when the search failed,
// which is distinct from an empty Results.
type Update struct {
	Query   string
	Results []domain.SearchResult
	Err     error
}

type Session struct {
	searcher Searcher
	delay    time.Duration
	limit    int

	mu      sync.Mutex
	seq     uint64
	timer   *time.Timer
	pending string
	cancel  context.CancelFunc
	closed  bool
	updates chan Update
	// running counts scheduled and executing searches.
	running sync.WaitGroup
}

func New(searcher Searcher, delay time.Duration, limit int) *Session {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Session{
		searcher: searcher,
		delay:    delay,
		limit:    limit,
		updates:  make(chan Update, 1),
	}
}

// Updates carries at most one pending result; a newer one replaces it.
// The channel is closed by Close.
func (s *Session) Updates() <-chan Update { return s.updates }

// Type records the current input. The search runs once input has been quiet
// for the debounce delay; anything typed earlier is superseded and any
// search already running for it is cancelled.
func (s *Session) Type(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.seq++
	seq := s.seq
	s.stopLocked()

	if strings.TrimSpace(q) == "" {
		s.deliverLocked(Update{Query: q, Results: []domain.SearchResult{}})
		return
	}
	s.pending = q
	s.running.Add(1)
	s.timer = time.AfterFunc(s.delay, func() { s.run(seq, q) })
}

// Flush runs a still-debounced query right away and waits until every
// search has finished and delivered. It must not race with Type.
func (s *Session) Flush() {
	s.mu.Lock()
	var fire func()
	if s.timer != nil && s.timer.Stop() {
		seq, q := s.seq, s.pending
		s.timer = nil
		fire = func() { s.run(seq, q) }
	}
	s.mu.Unlock()

	if fire != nil {
		fire()
	}
	s.running.Wait()
}

func (s *Session) run(seq uint64, q string) {
	defer s.running.Done()
	s.mu.Lock()
	if s.closed || seq != s.seq {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	res, err := s.searcher.SearchAll(ctx, q, s.limit)
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || seq != s.seq {
		return
	}
	s.deliverLocked(Update{Query: q, Results: res, Err: err})
}

func (s *Session) stopLocked() {
	if s.timer != nil {
		if s.timer.Stop() {
			s.running.Done()
		}
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// deliverLocked never blocks: only lock holders send, and the buffer is drained first.
func (s *Session) deliverLocked(u Update) {
	select {
	case <-s.updates:
	default:
	}
	s.updates <- u
}

// Close cancels pending and running searches, waits for them to return and
// closes the updates channel. It is safe to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.stopLocked()
	s.mu.Unlock()

	s.running.Wait()
	close(s.updates)
}
