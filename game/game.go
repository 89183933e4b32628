package game

import (
	"fmt"
	"log/slog"

	"wormy/game/entity"
	"wormy/game/manager"
	"wormy/game/types"
)

var (
	TextColor     = types.Color{R: 255, G: 255, B: 255}
	GameOverColor = types.Color{R: 255, G: 0, B: 0}
)

const (
	textOffsetX = 10
	textOffsetY = 10
	lineHeight  = 20
)

// Options configures a Game.
type Options struct {
	Grid           types.Grid
	InitialLength  int
	GrowthPerApple int
	Apple          entity.AppleConfig
	Rand           entity.Rand
	Logger         *slog.Logger
}

// Game runs play sessions back to back until the player quits.
type Game struct {
	opts       Options
	presenter  Presenter
	log        *slog.Logger
	collisions *manager.CollisionManager
	state      *manager.StateManager

	worm  *entity.Worm
	apple *entity.Apple
	last  Frame
}

// New creates a game with a fresh session ready to play.
func New(opts Options, presenter Presenter) *Game {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	g := &Game{
		opts:       opts,
		presenter:  presenter,
		log:        log,
		collisions: manager.NewCollisionManager(opts.Grid),
		state:      manager.NewStateManager(),
	}
	g.startSession()
	return g
}

// Run ticks the game until the player quits.
func (g *Game) Run() {
	for {
		if !g.Step(g.presenter.PollEvents()) {
			g.log.Info("quit",
				"session", g.state.SessionID(),
				"score", g.state.Score(),
				"high_score", g.state.HighScore(),
				"sessions", g.state.Sessions(),
			)
			return
		}
		g.presenter.WaitForNextTick()
	}
}

// Step applies one tick worth of input and state changes and presents the
// result. It returns false once the player has asked to quit.
func (g *Game) Step(events []Key) bool {
	if g.state.State() == manager.GameOver {
		return g.stepGameOver(events)
	}
	return g.stepPlaying(events)
}

func (g *Game) stepPlaying(events []Key) bool {
	for _, ev := range events {
		if ev == KeyEscape {
			return false
		}
		if dir, ok := keyDirection(ev); ok {
			g.worm.SetDirection(dir)
		}
	}

	g.worm.Advance()
	g.state.Tick()

	// Decay runs even on the tick the apple is eaten; Collect resets it.
	g.apple.Decay()

	if g.collisions.IsFoodCollision(g.worm.Head(), g.apple) {
		g.worm.Grow(g.opts.GrowthPerApple)
		points := g.apple.Collect()
		g.state.AddScore(points)
		g.log.Debug("apple eaten",
			"session", g.state.SessionID(),
			"points", points,
			"score", g.state.Score(),
			"next_apple", g.apple.Position,
		)
	}

	if c := g.collisions.CheckCollision(g.worm); c != manager.NoCollision {
		g.state.End(c)
		g.log.Info("game over",
			"session", g.state.SessionID(),
			"reason", c.String(),
			"score", g.state.Score(),
			"ticks", g.state.Ticks(),
			"elapsed", g.state.Elapsed(),
			"high_score", g.state.HighScore(),
		)
		g.presenter.Present(g.gameOverFrame())
		return true
	}

	g.last = g.playingFrame()
	g.presenter.Present(g.last)
	return true
}

func (g *Game) stepGameOver(events []Key) bool {
	for _, ev := range events {
		switch ev {
		case KeyEscape:
			return false
		case KeySpace:
			g.log.Info("restart", "previous_session", g.state.SessionID())
			g.state.Reset()
			g.startSession()
			g.presenter.Present(g.last)
			return true
		}
	}
	g.presenter.Present(g.gameOverFrame())
	return true
}

// startSession replaces the worm and apple. Score is reset by the state manager.
func (g *Game) startSession() {
	g.worm = entity.NewWorm(g.opts.Grid.Center(), g.opts.InitialLength, entity.Right)
	g.apple = entity.NewApple(g.opts.Grid, g.opts.Rand, g.opts.Apple)
	g.last = g.playingFrame()
	g.log.Info("session started",
		"session", g.state.SessionID(),
		"grid", fmt.Sprintf("%dx%d", g.opts.Grid.Width, g.opts.Grid.Height),
		"apple", g.apple.Position,
	)
}

func (g *Game) playingFrame() Frame {
	cells := g.worm.Render()
	cells = append(cells, g.apple.Render())
	return Frame{
		Cells: cells,
		Texts: []Text{{
			S:     fmt.Sprintf("Score: %d", g.state.Score()),
			X:     g.opts.Grid.PixelWidth() - textOffsetX,
			Y:     textOffsetY,
			Color: TextColor,
			Align: AlignRight,
		}},
	}
}

// gameOverFrame draws the loss overlay on top of the last playing frame.
func (g *Game) gameOverFrame() Frame {
	texts := make([]Text, 0, len(g.last.Texts)+2)
	texts = append(texts, g.last.Texts...)
	texts = append(texts,
		Text{
			S:     "GAME OVER - " + g.state.Collision().Message(),
			X:     textOffsetX,
			Y:     textOffsetY,
			Color: GameOverColor,
		},
		Text{
			S:     "Press space to play again or ESC to quit.",
			X:     textOffsetX,
			Y:     textOffsetY + lineHeight,
			Color: TextColor,
		},
	)
	return Frame{Cells: g.last.Cells, Texts: texts}
}

func keyDirection(k Key) (entity.Direction, bool) {
	switch k {
	case KeyUp:
		return entity.Up, true
	case KeyDown:
		return entity.Down, true
	case KeyLeft:
		return entity.Left, true
	case KeyRight:
		return entity.Right, true
	}
	return 0, false
}

func (g *Game) State() manager.State { return g.state.State() }
func (g *Game) Score() int { return g.state.Score() }
func (g *Game) Worm() *entity.Worm { return g.worm }
func (g *Game) Apple() *entity.Apple { return g.apple }
