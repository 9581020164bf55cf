// Package slider puts the tiles puzzle on the terminal platform: it maps
// keyboard and mouse input onto a tiles.Game and draws the board into a
// core.Screen.
package slider

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tiles/internal/config"
	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/registry"
	"github.com/vovakirdan/tui-tiles/internal/tiles"
)

const (
	flashTicks = 45 // how long a warning or jump highlight stays up
)

// Game implements registry.Game for one tiles variant.
type Game struct {
	variant    tiles.Variant
	preset     config.DifficultyPreset // per-instance choice, overrides the package setting
	difficulty config.DifficultyPreset
	cfg        config.TilesConfig
	session    *tiles.Game
	log        *log.Logger
	err        error

	tick    uint64
	tickDur time.Duration

	// Screen layout
	screenW  int
	screenH  int
	layout   tiles.Layout
	boardX   int
	boardY   int
	tooSmall bool

	// Keyboard cursor, in display cells
	cursor tiles.Cell

	// Mouse gesture
	pressed bool
	originX int
	originY int

	// Presentation state fed by session events
	warning      int // warnings left before the next jump, 0 when none shown
	warningTicks int
	jumped       []int
	jumpTicks    int
	lastEvent    tiles.EventKind
}

// Package-level settings, chosen by the CLI or menu before Reset.
var (
	selectedDifficulty = config.DifficultyEasy
	configPath         string
	gridOverride       config.GridSize
	logger             *log.Logger
)

// SetDifficulty selects the board size preset for new games.
func SetDifficulty(p config.DifficultyPreset) {
	selectedDifficulty = p
}

// GetDifficulty returns the selected preset.
func GetDifficulty() config.DifficultyPreset {
	return selectedDifficulty
}

// SetConfigPath points new games at a custom tiles.yaml.
func SetConfigPath(path string) {
	configPath = path
}

// SetGrid overrides the preset board size. A zero size clears the override.
func SetGrid(rows, columns int) {
	gridOverride = config.GridSize{Rows: rows, Columns: columns}
}

// SetLogger sets the logger handed to new sessions.
func SetLogger(l *log.Logger) {
	logger = l
}

// IDFor returns the registry id of a variant.
func IDFor(v tiles.Variant) string {
	if v == tiles.VariantClassic {
		return "tiles"
	}
	return "tiles_" + string(v)
}

// New creates an unstarted game of the given variant.
func New(v tiles.Variant) *Game {
	return &Game{variant: v}
}

func init() {
	for _, v := range tiles.Variants() {
		registry.Register(IDFor(v), func() registry.Game {
			return New(v)
		})
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return IDFor(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == tiles.VariantClassic {
		return "Tiles"
	}
	return "Tiles (" + g.variant.Title() + ")"
}

// Variant returns the game type.
func (g *Game) Variant() tiles.Variant {
	return g.variant
}

// Difficulty returns the preset the current board was dealt with.
func (g *Game) Difficulty() config.DifficultyPreset {
	return g.difficulty
}

// UseDifficulty pins the preset for this instance, so concurrent sessions
// do not share the package-level choice. It applies at the next Reset.
func (g *Game) UseDifficulty(p config.DifficultyPreset) {
	g.preset = p
}

// GridSize returns the shape of the current board.
func (g *Game) GridSize() config.GridSize {
	if g.session == nil {
		return config.GridSize{}
	}
	b := g.session.Board()
	return config.GridSize{Rows: b.Rows(), Columns: b.Columns()}
}

// Session exposes the underlying puzzle. It is nil before Reset.
func (g *Game) Session() *tiles.Game {
	return g.session
}

// Err returns the error that stopped the last Reset, if any.
func (g *Game) Err() error {
	return g.err
}

// SessionOptions maps a tiles.yaml config onto session options.
func SessionOptions(cfg config.TilesConfig, v tiles.Variant, grid config.GridSize, seed int64, l *log.Logger) tiles.Options {
	return tiles.Options{
		Rows:    grid.Rows,
		Columns: grid.Columns,
		Variant: v,
		Seed:    seed,
		Tracker: tiles.TrackerConfig{
			TapThreshold:    cfg.Tracking.TapThreshold,
			CommitThreshold: cfg.Tracking.CommitThreshold,
			Slide:           cfg.Timing.Slide,
			Surprise:        cfg.Timing.Surprise,
			Pop:             cfg.Timing.Pop,
		},
		TileLength:      cfg.Tracking.TileLength,
		Warnings:        cfg.Timing.Warnings,
		WarningInterval: cfg.Timing.WarningInterval,
		MaxAttempts:     cfg.Shuffle.MaxAttempts,
		Logger:          l,
	}
}

// Reset deals a fresh board sized for the selected difficulty.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.log = logger
	if g.log == nil {
		g.log = log.New(io.Discard)
	}

	cfg, err := config.LoadTiles(configPath)
	if err != nil {
		g.log.Warn("using default tiles config", "path", configPath, "err", err)
		cfg = config.DefaultTilesConfig()
	}
	g.cfg = cfg
	g.difficulty = selectedDifficulty
	if g.preset != "" {
		g.difficulty = g.preset
	}

	grid := cfg.Grid(g.difficulty)
	if gridOverride.Valid() {
		grid = gridOverride
	}

	g.session, g.err = tiles.New(SessionOptions(cfg, g.variant, grid, rc.Seed, g.log))
	if g.err != nil {
		g.log.Error("cannot start game", "game", g.ID(), "rows", grid.Rows, "columns", grid.Columns, "err", g.err)
	}

	g.tick = 0
	g.tickDur = rc.TickDuration()
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.resetPresentation()
	g.fitBoard()
}

func (g *Game) resetPresentation() {
	g.cursor = tiles.Cell{}
	g.pressed = false
	g.warning = 0
	g.warningTicks = 0
	g.jumped = nil
	g.jumpTicks = 0
	g.lastEvent = tiles.EventGameStarted
	if g.session != nil {
		g.session.Drain()
	}
}

// Resize refits the board to a new screen without dealing again.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.fitBoard()
	rows, cols := g.layout.DisplaySize()
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, max(0, rows-1))
	g.cursor.Column = core.Clamp(g.cursor.Column, 0, max(0, cols-1))
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.decayFlashes()

	if g.session == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		if g.session.Paused() {
			g.session.Resume()
		} else {
			g.session.Pause()
			g.pressed = false
		}
	}

	if g.session.Paused() || g.session.Finished() {
		g.drainEvents()
		return core.StepResult{State: g.State()}
	}

	g.handleKeys(in)
	for _, ev := range in.Pointer {
		g.handlePointer(ev)
	}

	if err := g.session.Advance(g.tickDur); err != nil {
		g.log.Debug("random jump skipped", "game", g.ID(), "err", err)
	}
	g.drainEvents()

	return core.StepResult{State: g.State()}
}

func (g *Game) restart() {
	if err := g.session.NewGame(); err != nil {
		g.log.Error("cannot deal new game", "game", g.ID(), "err", err)
		g.err = err
		return
	}
	g.resetPresentation()
}

// handleKeys moves the cursor and taps the tile under it.
func (g *Game) handleKeys(in core.InputFrame) {
	rows, cols := g.layout.DisplaySize()
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row = core.Clamp(g.cursor.Row-1, 0, rows-1)
	case in.Has(core.ActionDown):
		g.cursor.Row = core.Clamp(g.cursor.Row+1, 0, rows-1)
	case in.Has(core.ActionLeft):
		g.cursor.Column = core.Clamp(g.cursor.Column-1, 0, cols-1)
	case in.Has(core.ActionRight):
		g.cursor.Column = core.Clamp(g.cursor.Column+1, 0, cols-1)
	}

	if !in.Has(core.ActionConfirm) {
		return
	}
	pos, ok := g.layout.FromDisplay(g.cursor)
	if !ok {
		return
	}
	if _, err := g.session.Tap(pos); err != nil {
		g.logRejected("tap", pos, err)
	}
}

// handlePointer feeds one mouse sample to the session. Screen offsets are
// scaled so one cell width or height equals one tile of travel.
func (g *Game) handlePointer(ev core.PointerEvent) {
	switch ev.Kind {
	case core.PointerPress:
		cell, ok := g.cellAt(ev.X, ev.Y)
		if !ok {
			return
		}
		pos, _ := g.layout.FromDisplay(cell)
		g.cursor = cell
		g.pressed = true
		g.originX, g.originY = ev.X, ev.Y
		if err := g.session.PointerDown(pos); err != nil {
			g.logRejected("press", pos, err)
		}
	case core.PointerDrag:
		if !g.pressed {
			return
		}
		g.session.PointerMove(g.translation(ev.X, ev.Y))
	case core.PointerRelease:
		if !g.pressed {
			return
		}
		g.pressed = false
		g.session.PointerMove(g.translation(ev.X, ev.Y))
		pos := -1
		if cell, ok := g.cellAt(ev.X, ev.Y); ok {
			pos, _ = g.layout.FromDisplay(cell)
		}
		if _, err := g.session.PointerUp(pos); err != nil {
			g.logRejected("release", pos, err)
		}
	}
}

func (g *Game) translation(x, y int) core.Vector {
	return core.Vector{
		DX: float64(x - g.originX),
		DY: float64(y - g.originY),
	}.Scale(g.unitX(), g.unitY())
}

func (g *Game) unitX() float64 { return g.cfg.Tracking.TileLength / cellWidth }
func (g *Game) unitY() float64 { return g.cfg.Tracking.TileLength / cellHeight }

func (g *Game) logRejected(what string, pos int, err error) {
	if errors.Is(err, tiles.ErrInteractionActive) {
		return
	}
	g.log.Warn("input rejected", "game", g.ID(), "input", what, "position", pos, "err", err)
}

// drainEvents turns session events into short-lived highlights.
func (g *Game) drainEvents() {
	for _, ev := range g.session.Drain() {
		g.lastEvent = ev.Kind
		switch ev.Kind {
		case tiles.EventJumpWarning:
			g.warning = ev.Remaining
			g.warningTicks = flashTicks
		case tiles.EventRandomJump:
			g.warning = 0
			g.warningTicks = 0
			g.jumped = ev.IDs
			g.jumpTicks = flashTicks
		case tiles.EventGameFinished:
			g.log.Info("solved", "game", g.ID(), "difficulty", g.difficulty,
				"moves", g.session.Board().Moves())
		}
	}
}

func (g *Game) decayFlashes() {
	if g.warningTicks > 0 {
		g.warningTicks--
		if g.warningTicks == 0 {
			g.warning = 0
		}
	}
	if g.jumpTicks > 0 {
		g.jumpTicks--
		if g.jumpTicks == 0 {
			g.jumped = nil
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	b := g.session.Board()
	return core.GameState{
		Moves:    b.Moves(),
		Elapsed:  b.Elapsed(),
		Solved:   g.session.Finished(),
		GameOver: g.session.Finished(),
		Paused:   g.session.Paused(),
	}
}
