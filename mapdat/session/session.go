// Package session runs debounced reparsing over a document that changes
// faster than it is worth parsing, the way an editor feeds keystrokes.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/manicmap/mapdat-go/internal/debug"
	"github.com/manicmap/mapdat-go/mapdat"
	"github.com/manicmap/mapdat-go/mapdat/core"
)

// DefaultQuiescence is how long the text must stay unchanged before a
// reparse starts.
const DefaultQuiescence = 300 * time.Millisecond

// Snapshot is one immutable parse result. Snapshots are published in
// version order; a snapshot for superseded text is never published.
type Snapshot struct {
	Version     int64
	Document    *mapdat.Document
	Diagnostics *mapdat.Diagnostics
}

// Session owns the edit-debounce-reparse loop for one document.
type Session struct {
	path       string
	quiescence time.Duration
	results    chan *Snapshot

	mu      sync.Mutex
	version int64
	text    string
	timer   *time.Timer
	cancel  context.CancelFunc
	closed  bool
}

// Option configures a Session.
type Option func(*Session)

// WithQuiescence overrides the debounce interval.
func WithQuiescence(d time.Duration) Option {
	return func(s *Session) {
		s.quiescence = d
	}
}

// NewSession creates a session for the document at path. Results arrive on
// Results until Close.
func NewSession(path string, opts ...Option) *Session {
	s := &Session{
		path:       path,
		quiescence: DefaultQuiescence,
		results:    make(chan *Snapshot, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Results delivers snapshots in version order. Stale intermediate snapshots
// are dropped when the consumer lags.
func (s *Session) Results() <-chan *Snapshot {
	return s.results
}

// Update replaces the document text. The reparse starts once the text has
// been quiet for the quiescence interval; an in-flight parse of older text
// is cancelled.
func (s *Session) Update(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.version++
	s.text = text

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.timer != nil {
		s.timer.Stop()
	}

	version := s.version
	s.timer = time.AfterFunc(s.quiescence, func() {
		s.parse(version)
	})
}

// Flush parses the current text immediately, bypassing the debounce. It
// returns the snapshot directly and also publishes it.
func (s *Session) Flush() *Snapshot {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	version := s.version
	s.mu.Unlock()

	return s.parse(version)
}

// Close stops the session. No snapshot is published after Close returns.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	close(s.results)
}

// parse runs one parse for the given version and publishes the snapshot if
// the version is still current when it finishes.
func (s *Session) parse(version int64) *Snapshot {
	s.mu.Lock()
	if s.closed || version != s.version {
		s.mu.Unlock()
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	text := s.text
	s.mu.Unlock()

	file := core.NewSourceFile(s.path, text)
	doc, diags := mapdat.ValidateMapContext(ctx, file)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || version != s.version || ctx.Err() != nil {
		debug.Debug("dropping stale parse", "version", version, "current", s.version)
		return nil
	}
	s.cancel = nil

	snap := &Snapshot{
		Version:     version,
		Document:    doc,
		Diagnostics: diags,
	}

	// Keep only the newest snapshot when the consumer is behind.
	select {
	case s.results <- snap:
	default:
		select {
		case <-s.results:
		default:
		}
		s.results <- snap
	}
	return snap
}
