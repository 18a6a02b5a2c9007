package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	colorWall   = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	colorPlayer = color.RGBA{R: 200, G: 0, B: 0, A: 255}
	colorBot    = color.RGBA{R: 0, G: 0, B: 200, A: 255}
	colorBullet = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	colorPath   = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	colorGrid   = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	colorText   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// initSprites pre-renders the two hull images: a filled square with a black
// turret block on the +X edge, rotated per frame when drawn.
func (g *Game) initSprites() {
	g.playerSprite = newTankSprite(g.cfg.TankSize, colorPlayer)
	g.botSprite = newTankSprite(g.cfg.TankSize, colorBot)
}

func newTankSprite(size int, c color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	img.Fill(c)
	vector.DrawFilledRect(img, float32(size-8), float32(size/2-4), 8, 8,
		color.RGBA{A: 255}, false)
	return img
}

// Draw renders the whole frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})

	if g.showGrid {
		g.drawGridOverlay(screen)
	}
	for _, w := range g.world.Walls() {
		vector.DrawFilledRect(screen, float32(w.x), float32(w.y), float32(w.w), float32(w.h),
			colorWall, false)
	}
	if g.showPath {
		g.drawPathOverlay(screen)
	}

	g.drawTank(screen, g.world.Tank(0), g.playerSprite)
	g.drawTank(screen, g.world.Tank(1), g.botSprite)

	half := float32(g.cfg.BulletSize) / 2
	for _, bl := range g.world.Bullets() {
		s := bl.Snapshot()
		vector.DrawFilledRect(screen, float32(s.X)-half, float32(s.Y)-half,
			float32(g.cfg.BulletSize), float32(g.cfg.BulletSize), colorBullet, false)
	}

	g.drawHUD(screen)
}

func (g *Game) drawTank(screen *ebiten.Image, t *Tank, sprite *ebiten.Image) {
	if !t.Alive() {
		return
	}
	x, y := t.Pos()
	size := float64(g.cfg.TankSize)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-size/2, -size/2)
	// Heading is CCW-positive with screen Y down, so the render rotation is negated.
	op.GeoM.Rotate(-t.Heading() * math.Pi / 180)
	op.GeoM.Translate(x, y)
	screen.DrawImage(sprite, op)
}

// drawPathOverlay traces the bot's cached global path and its look-ahead
// steering point.
func (g *Game) drawPathOverlay(screen *ebiten.Image) {
	path := g.bot.Path()
	bx, by := g.world.Tank(1).Pos()
	px, py := bx, by
	for _, wp := range path {
		vector.StrokeLine(screen, float32(px), float32(py), float32(wp[0]), float32(wp[1]),
			2, colorPath, false)
		px, py = wp[0], wp[1]
	}
	if lx, ly, ok := g.bot.LookAhead(); ok {
		vector.DrawFilledCircle(screen, float32(lx), float32(ly), 4, colorPath, true)
	}
}

// drawGridOverlay outlines the blocked (inflated) occupancy cells.
func (g *Game) drawGridOverlay(screen *ebiten.Image) {
	grid := g.world.Grid()
	cs := g.cfg.CellSize
	for cy := 0; cy < grid.Rows(); cy++ {
		for cx := 0; cx < grid.Cols(); cx++ {
			if grid.IsWalkable(Cell{X: cx, Y: cy}) {
				continue
			}
			vector.StrokeRect(screen, float32(cx*cs), float32(cy*cs), float32(cs), float32(cs),
				1, colorGrid, false)
		}
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	face := basicfont.Face7x13
	hud := fmt.Sprintf("tick %d  bot:%s  [P]ath [G]rid [C]opy report [Tab]pause",
		g.world.Tick(), g.bot.State())
	text.Draw(screen, hud, face, 14, g.cfg.ArenaHeight-16, colorText)

	if over, winner := g.world.Over(); over {
		msg := fmt.Sprintf("%s WINS - press R to restart", winner)
		text.Draw(screen, msg, face, g.cfg.ArenaWidth/2-len(msg)*7/2, g.cfg.ArenaHeight/2, colorText)
	}
	if g.paused {
		text.Draw(screen, "PAUSED", face, g.cfg.ArenaWidth/2-21, 30, colorText)
	}
}
