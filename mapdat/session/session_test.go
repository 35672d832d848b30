package session

import (
	"testing"
	"time"
)

const sessionMap = `info{
rowcount:2
colcount:2
}
tiles{
1,1,
1,1,
}
`

func TestFlushReturnsSnapshot(t *testing.T) {
	s := NewSession("level.dat")
	defer s.Close()

	s.Update(sessionMap)
	snap := s.Flush()
	if snap == nil {
		t.Fatal("Flush returned nil")
	}
	if snap.Version != 1 {
		t.Errorf("version = %d, want 1", snap.Version)
	}
	if snap.Document == nil || snap.Document.Info().RowCount != 2 {
		t.Error("document not parsed")
	}
	if snap.Diagnostics.HasErrors() {
		t.Errorf("unexpected errors: %v", snap.Diagnostics.Errors())
	}
}

func TestDebouncedUpdatePublishes(t *testing.T) {
	s := NewSession("level.dat", WithQuiescence(10*time.Millisecond))
	defer s.Close()

	s.Update(sessionMap)

	select {
	case snap := <-s.Results():
		if snap.Version != 1 {
			t.Errorf("version = %d, want 1", snap.Version)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot published")
	}
}

func TestRapidUpdatesCoalesce(t *testing.T) {
	s := NewSession("level.dat", WithQuiescence(20*time.Millisecond))
	defer s.Close()

	s.Update("info{\n}")
	s.Update("info{\nrowcount:1\n}")
	s.Update(sessionMap)

	select {
	case snap := <-s.Results():
		if snap.Version != 3 {
			t.Errorf("version = %d, want the final update only", snap.Version)
		}
		if snap.Document.Info().RowCount != 2 {
			t.Error("snapshot is not of the final text")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot published")
	}

	select {
	case snap, ok := <-s.Results():
		if ok {
			t.Errorf("unexpected extra snapshot, version %d", snap.Version)
		}
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDiagnosticsSurviveIntoSnapshot(t *testing.T) {
	s := NewSession("level.dat")
	defer s.Close()

	s.Update("script{\nwhen(enter:1,1)(crystals>0)[Go];\n}")
	snap := s.Flush()
	if snap == nil {
		t.Fatal("Flush returned nil")
	}
	if !snap.Diagnostics.HasErrors() {
		t.Error("single-paren condition should have produced an error")
	}
}

func TestFlushWithoutUpdate(t *testing.T) {
	s := NewSession("level.dat")
	defer s.Close()

	snap := s.Flush()
	if snap == nil {
		t.Fatal("Flush returned nil")
	}
	if snap.Version != 0 || snap.Document == nil {
		t.Errorf("empty document should still parse, got version %d", snap.Version)
	}
}

func TestCloseStopsPublishing(t *testing.T) {
	s := NewSession("level.dat", WithQuiescence(10*time.Millisecond))
	s.Update(sessionMap)
	s.Close()

	if s.Flush() != nil {
		t.Error("Flush after Close must return nil")
	}
	if snap, ok := <-s.Results(); ok {
		t.Errorf("snapshot published after Close, version %d", snap.Version)
	}
	// Idempotent.
	s.Close()
}

func TestUpdateAfterCloseIsIgnored(t *testing.T) {
	s := NewSession("level.dat")
	s.Close()
	s.Update(sessionMap)
	if s.Flush() != nil {
		t.Error("closed session must not parse")
	}
}
