package manager

import (
	"time"

	"github.com/google/uuid"
)

// State is the session-level phase of play.
type State int

const (
	Playing State = iota
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "game_over"
	}
	return "playing"
}

// StateManager tracks one play session plus the best score seen across
// restarts. Nothing is written to disk.
type StateManager struct {
	sessionID string
	state     State
	score     int
	ticks     int
	collision CollisionType
	startTime time.Time
	highScore int
	sessions  int
}

func NewStateManager() *StateManager {
	sm := &StateManager{}
	sm.Reset()
	return sm
}

// Reset starts a fresh session: score 0, Playing, new session id.
func (sm *StateManager) Reset() {
	sm.sessionID = uuid.New().String()
	sm.state = Playing
	sm.score = 0
	sm.ticks = 0
	sm.collision = NoCollision
	sm.startTime = time.Now()
	sm.sessions++
}

func (sm *StateManager) AddScore(points int) {
	sm.score += points
}

func (sm *StateManager) Tick() {
	sm.ticks++
}

// End moves the session to GameOver and updates the high score.
func (sm *StateManager) End(collision CollisionType) {
	sm.state = GameOver
	sm.collision = collision
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
}

func (sm *StateManager) State() State { return sm.state }
func (sm *StateManager) Score() int { return sm.score }
func (sm *StateManager) Ticks() int { return sm.ticks }
func (sm *StateManager) SessionID() string { return sm.sessionID }
func (sm *StateManager) Collision() CollisionType { return sm.collision }
func (sm *StateManager) HighScore() int { return sm.highScore }
func (sm *StateManager) Sessions() int { return sm.sessions }

// Elapsed returns how long the current session has lasted.
func (sm *StateManager) Elapsed() time.Duration {
	return time.Since(sm.startTime)
}
