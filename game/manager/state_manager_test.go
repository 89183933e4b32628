package manager

import "testing"

func TestNewStateManager(t *testing.T) {
	sm := NewStateManager()

	if sm.State() != Playing {
		t.Errorf("expected Playing, got %v", sm.State())
	}
	if sm.Score() != 0 || sm.Ticks() != 0 {
		t.Errorf("expected zero score and ticks, got %d and %d", sm.Score(), sm.Ticks())
	}
	if sm.SessionID() == "" {
		t.Error("expected a session id")
	}
	if sm.Sessions() != 1 {
		t.Errorf("expected 1 session, got %d", sm.Sessions())
	}
}

func TestEndTracksHighScore(t *testing.T) {
	sm := NewStateManager()
	sm.AddScore(975)
	sm.End(WallCollision)

	if sm.State() != GameOver {
		t.Fatalf("expected GameOver, got %v", sm.State())
	}
	if sm.Collision() != WallCollision {
		t.Errorf("expected wall collision, got %v", sm.Collision())
	}
	if sm.HighScore() != 975 {
		t.Errorf("expected high score 975, got %d", sm.HighScore())
	}

	sm.Reset()
	sm.AddScore(10)
	sm.End(SelfCollision)
	if sm.HighScore() != 975 {
		t.Errorf("lower score replaced high score: %d", sm.HighScore())
	}
}

func TestResetStartsFreshSession(t *testing.T) {
	sm := NewStateManager()
	first := sm.SessionID()
	sm.AddScore(500)
	sm.Tick()
	sm.End(SelfCollision)

	sm.Reset()

	if sm.State() != Playing || sm.Score() != 0 || sm.Ticks() != 0 {
		t.Errorf("reset left state=%v score=%d ticks=%d", sm.State(), sm.Score(), sm.Ticks())
	}
	if sm.Collision() != NoCollision {
		t.Errorf("expected no collision after reset, got %v", sm.Collision())
	}
	if sm.SessionID() == first {
		t.Error("expected a new session id after reset")
	}
	if sm.Sessions() != 2 {
		t.Errorf("expected 2 sessions, got %d", sm.Sessions())
	}
}
