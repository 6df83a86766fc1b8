package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"waypoint-locator/internal/common"
	"waypoint-locator/internal/route"
)

// ============================================================================
// CONFIGURATION - Adjust these values to customize the demo
// ============================================================================

// Default route file, written by cmd/gen-route
const DefaultRoutePath = "assets/route.csv"

// Render window dimensions
const (
	WindowWidth  = 1200
	WindowHeight = 800
)

// Demo vehicle settings
const (
	VehicleSpeed    = 0.8   // Distance units advanced along the loop per tick
	WobbleAmplitude = 6.0   // Lateral offset from the centerline
	WobblePeriod    = 300.0 // Ticks per full wobble cycle
	ViewScaleMargin = 0.90  // Margin for fitting the route in the window
)

// Visualization colors
var (
	ColorPath     = color.RGBA{90, 90, 90, 255}    // Gray route edges
	ColorWaypoint = color.RGBA{150, 150, 150, 255} // Waypoint dots
	ColorNearest  = color.RGBA{255, 255, 0, 255}   // Yellow
	ColorBehind   = color.RGBA{255, 0, 255, 255}   // Magenta
	ColorAhead    = color.RGBA{50, 255, 50, 255}   // Green
	ColorVehicle  = color.RGBA{255, 0, 0, 255}     // Red
	ColorCursor   = color.RGBA{100, 200, 255, 255} // Cyan
)

// ============================================================================

type Game struct {
	Locator *route.Locator

	// Demo vehicle state
	VehicleS   float64
	VehiclePos common.Vec2
	VehicleFix route.Fix
	Tick       int
	Paused     bool

	// Rendering Scale
	ViewScale   float32
	ViewOffsetX float32
	ViewOffsetY float32
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.Paused = !g.Paused
	}
	if g.Paused {
		return nil
	}

	g.Tick++
	path := g.Locator.Path()
	g.VehicleS += VehicleSpeed
	if g.VehicleS >= path.TotalLength() {
		g.VehicleS -= path.TotalLength()
	}

	// Slide along the centerline with a lateral wobble so the locator sees
	// poses off the path, like a real vehicle would produce.
	center := path.PointAtS(g.VehicleS)
	dir := path.PointAtS(g.VehicleS + 1).Sub(path.PointAtS(g.VehicleS - 1)).Normalize()
	wobble := WobbleAmplitude * math.Sin(2*math.Pi*float64(g.Tick)/WobblePeriod)
	g.VehiclePos = center.Add(dir.Perp().Scale(wobble))

	fix, err := g.Locator.Locate(route.Pose{
		Position: g.VehiclePos,
		Heading:  math.Atan2(dir.Y, dir.X),
	})
	if err != nil {
		return err
	}
	g.VehicleFix = fix
	return nil
}

func (g *Game) toScreen(p common.Vec2) (float32, float32) {
	return float32(p.X)*g.ViewScale + g.ViewOffsetX, float32(p.Y)*g.ViewScale + g.ViewOffsetY
}

func (g *Game) toWorld(x, y int) common.Vec2 {
	return common.Vec2{
		X: float64((float32(x) - g.ViewOffsetX) / g.ViewScale),
		Y: float64((float32(y) - g.ViewOffsetY) / g.ViewScale),
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	path := g.Locator.Path()
	n := path.Len()

	// Route edges, including the closing edge back to the start
	for i := 0; i < n; i++ {
		p1x, p1y := g.toScreen(path.At(i).Position)
		p2x, p2y := g.toScreen(path.At((i + 1) % n).Position)
		vector.StrokeLine(screen, p1x, p1y, p2x, p2y, 1, ColorPath, true)
	}

	// Waypoints
	for i := 0; i < n; i++ {
		x, y := g.toScreen(path.At(i).Position)
		vector.DrawFilledCircle(screen, x, y, 2, ColorWaypoint, true)
	}

	// Vehicle fix: behind / ahead / nearest markers
	bx, by := g.toScreen(path.At(g.VehicleFix.Behind).Position)
	vector.DrawFilledCircle(screen, bx, by, 5, ColorBehind, true)
	ax, ay := g.toScreen(path.At(g.VehicleFix.Ahead).Position)
	vector.DrawFilledCircle(screen, ax, ay, 5, ColorAhead, true)
	nx, ny := g.toScreen(path.At(g.VehicleFix.Nearest).Position)
	vector.StrokeCircle(screen, nx, ny, 8, 2, ColorNearest, true)

	// Vehicle and its link to the nearest waypoint
	vx, vy := g.toScreen(g.VehiclePos)
	vector.StrokeLine(screen, vx, vy, nx, ny, 1, ColorNearest, true)
	vector.DrawFilledCircle(screen, vx, vy, 4, ColorVehicle, true)

	// Cursor query
	mx, my := ebiten.CursorPosition()
	cursorWorld := g.toWorld(mx, my)
	cursorLine := "cursor: off path"
	if fix, err := g.Locator.Locate(route.Pose{Position: cursorWorld}); err == nil {
		cx, cy := g.toScreen(path.At(fix.Nearest).Position)
		vector.StrokeCircle(screen, cx, cy, 8, 1, ColorCursor, true)
		vector.StrokeLine(screen, float32(mx), float32(my), cx, cy, 1, ColorCursor, true)
		cursorLine = fmt.Sprintf("cursor (%.0f, %.0f): nearest=%d behind=%d ahead=%d",
			cursorWorld.X, cursorWorld.Y, fix.Nearest, fix.Behind, fix.Ahead)
	}

	nearestS := path.At(g.VehicleFix.Nearest).S
	msg := fmt.Sprintf(
		"track length: %.1f\nvehicle s: %.1f (nearest wp s: %.1f)\nvehicle: nearest=%d behind=%d ahead=%d\n%s\n[space] pause",
		path.TotalLength(), g.VehicleS, nearestS,
		g.VehicleFix.Nearest, g.VehicleFix.Behind, g.VehicleFix.Ahead,
		cursorLine,
	)
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return WindowWidth, WindowHeight
}

// fitView computes the scale and offset that center the route in the window.
func (g *Game) fitView() {
	minP := common.Vec2{X: math.MaxFloat64, Y: math.MaxFloat64}
	maxP := common.Vec2{X: -math.MaxFloat64, Y: -math.MaxFloat64}
	path := g.Locator.Path()
	for i := 0; i < path.Len(); i++ {
		p := path.At(i).Position
		minP.X = math.Min(minP.X, p.X)
		minP.Y = math.Min(minP.Y, p.Y)
		maxP.X = math.Max(maxP.X, p.X)
		maxP.Y = math.Max(maxP.Y, p.Y)
	}

	spanX := maxP.X - minP.X
	spanY := maxP.Y - minP.Y
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	scaleW := float64(WindowWidth) / spanX
	scaleH := float64(WindowHeight) / spanY
	scale := scaleW
	if scaleH < scaleW {
		scale = scaleH
	}
	g.ViewScale = float32(scale) * ViewScaleMargin

	g.ViewOffsetX = (WindowWidth - float32(spanX)*g.ViewScale) / 2 - float32(minP.X)*g.ViewScale
	g.ViewOffsetY = (WindowHeight - float32(spanY)*g.ViewScale) / 2 - float32(minP.Y)*g.ViewScale
}

// fallbackLoop is used when no route file is available: an ellipse sampled
// coarsely enough that the behind/ahead markers are easy to see.
func fallbackLoop() []common.Vec2 {
	const (
		samples = 72
		radiusX = 300.0
		radiusY = 200.0
	)
	points := make([]common.Vec2, 0, samples)
	for i := 0; i < samples; i++ {
		theta := 2 * math.Pi * float64(i) / samples
		points = append(points, common.Vec2{
			X: radiusX * math.Cos(theta),
			Y: radiusY * math.Sin(theta),
		})
	}
	return points
}

func main() {
	routePath := flag.String("route", DefaultRoutePath, "CSV route file (x,y per line)")
	flag.Parse()

	points, err := route.LoadCSV(*routePath)
	if err != nil {
		log.Printf("cannot load %s (%v), using generated loop", *routePath, err)
		points = fallbackLoop()
	}

	path, err := route.BuildPath(points)
	if err != nil {
		log.Fatal(err)
	}

	game := &Game{Locator: route.NewLocator(path)}
	game.fitView()

	ebiten.SetWindowSize(WindowWidth, WindowHeight)
	ebiten.SetWindowTitle("Waypoint Locator")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
