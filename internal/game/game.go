package game

import (
	"log"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game is the Ebiten front-end: a human-driven tank against the bot in the
// stock maze. All simulation state lives in World; this type only handles
// input, overlay toggles and rendering.
type Game struct {
	cfg   Config
	world *World
	bot   *Bot

	showPath bool
	showGrid bool
	paused   bool

	prevKeys map[ebiten.Key]bool

	// Pre-rendered hull sprites, rotated per frame via GeoM.
	playerSprite *ebiten.Image
	botSprite    *ebiten.Image
}

// New builds the playable game with the default config and maze layout.
func New() *Game {
	cfg := DefaultConfig()
	logger := NewDecisionLog(false)
	world := NewWorld(cfg, DefaultLayout(cfg), 500, 500, logger)
	g := &Game{
		cfg:      cfg,
		world:    world,
		bot:      NewBot(world.Config(), world.Grid(), logger, "bot"),
		showPath: true,
		prevKeys: make(map[ebiten.Key]bool),
	}
	g.initSprites()
	return g
}

// keyJustPressed is an edge-triggered key check using the previous-frame map.
func (g *Game) keyJustPressed(k ebiten.Key) bool {
	down := ebiten.IsKeyPressed(k)
	was := g.prevKeys[k]
	g.prevKeys[k] = down
	return down && !was
}

// playerAction maps held keys to the single discrete action for this tick.
// Fire wins over movement, movement over rotation, matching the one-action-
// per-tick contract the bot lives under.
func (g *Game) playerAction() Action {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeySpace):
		return ActionFire
	case ebiten.IsKeyPressed(ebiten.KeyW):
		return ActionAdvance
	case ebiten.IsKeyPressed(ebiten.KeyS):
		return ActionReverse
	case ebiten.IsKeyPressed(ebiten.KeyA):
		return ActionRotateCCW
	case ebiten.IsKeyPressed(ebiten.KeyD):
		return ActionRotateCW
	default:
		return ActionHold
	}
}

// Update runs one tick of input handling and simulation.
func (g *Game) Update() error {
	if g.keyJustPressed(ebiten.KeyP) {
		g.showPath = !g.showPath
	}
	if g.keyJustPressed(ebiten.KeyG) {
		g.showGrid = !g.showGrid
	}
	if g.keyJustPressed(ebiten.KeyTab) {
		g.paused = !g.paused
	}
	// Simulation speed presets.
	switch {
	case g.keyJustPressed(ebiten.Key1):
		ebiten.SetTPS(30)
	case g.keyJustPressed(ebiten.Key2):
		ebiten.SetTPS(60)
	case g.keyJustPressed(ebiten.Key3):
		ebiten.SetTPS(120)
	}
	if g.keyJustPressed(ebiten.KeyC) {
		if err := clipboard.WriteAll(DebugReport(g.world, g.bot)); err != nil {
			log.Printf("clipboard copy failed: %v", err)
		}
	}
	over, _ := g.world.Over()
	if over && g.keyJustPressed(ebiten.KeyR) {
		g.world.Reset()
		g.bot.Reset(g.world.Grid())
	}

	if g.paused || over {
		return nil
	}

	botAct := g.bot.Decide(g.world.Input(1))
	g.world.Step(g.playerAction(), botAct)
	return nil
}

// Layout reports the fixed arena size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ArenaWidth, g.cfg.ArenaHeight
}
