// Interactive viewer for the galaxy collision simulation. This is the
// frame-loop driver: it seeds the simulation once, steps it once per tick,
// and feeds control keys into the command API. All physics lives in the sim
// and galaxy packages; this binary only projects snapshots onto the screen.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"gopkg.in/gcfg.v1"

	"galcrash/galaxy"
	"galcrash/io"
	"galcrash/sim"
)

const (
	screenWidth  = 1280
	screenHeight = 800

	// Simulation seconds advanced per wall-clock second. The per-tick step
	// is derived from this once at startup so motion is refresh-rate
	// independent.
	simSecondsPerSecond = 0.25

	// One-shot offset applied by the fast-forward and rewind keys.
	fastForwardSeconds = 2.0
)

type Game struct {
	sim  *sim.Simulation
	snap []float64

	scale      float64
	degenerate bool
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		cmd := sim.Command{Type: sim.Pause}
		if g.sim.Paused() {
			cmd.Type = sim.Resume
		}
		if err := g.sim.Dispatch(cmd); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.sim.Dispatch(sim.Command{Type: sim.ReverseTime}); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		cmd := sim.Command{Type: sim.FastForward, Seconds: fastForwardSeconds}
		if err := g.sim.Dispatch(cmd); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		cmd := sim.Command{Type: sim.FastForward, Seconds: -fastForwardSeconds}
		if err := g.sim.Dispatch(cmd); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if err := g.sim.Dispatch(sim.Command{Type: sim.Restart}); err != nil {
			return err
		}
		g.degenerate = false
	}

	switch err := g.sim.Update(); err {
	case nil:
		g.degenerate = false
	case sim.ErrDegenerate:
		// The previous state is still intact; keep showing it.
		g.degenerate = true
	default:
		return err
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.snap = g.sim.Snapshot(g.snap)

	for i := 0; i < len(g.snap); i += 3 {
		x := screenWidth/2 + int(g.snap[i]*g.scale)
		y := screenHeight/2 - int(g.snap[i+1]*g.scale)

		if i < 6 {
			// The two cores.
			for dy := -2; dy <= 2; dy++ {
				for dx := -2; dx <= 2; dx++ {
					screen.Set(x+dx, y+dy, color.RGBA{255, 220, 120, 255})
				}
			}
			continue
		}
		screen.Set(x, y, color.RGBA{200, 200, 255, 255})
	}

	status := fmt.Sprintf(
		"t = %8.3f  dir %+g  paused %v", g.sim.Time(),
		g.sim.TimeDirection(), g.sim.Paused(),
	)
	if g.degenerate {
		status += "  [degenerate step dropped]"
	}
	ebitenutil.DebugPrint(screen, status)

	help := "Space pause  R reverse  F fast-forward  B rewind  N restart"
	text.Draw(screen, help, basicfont.Face7x13, 12, screenHeight-12,
		color.RGBA{180, 180, 200, 255})
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	var configPath string
	flag.StringVar(&configPath, "Config", "",
		"Optional configuration file with a [Simulation] section. "+
			"Defaults to two 5-ring galaxies.")
	flag.Parse()

	cfg := &galaxy.Config{
		Rings:          [2]int{5, 5},
		RingSeparation: 3,
		MinSeparation:  3,
		Inclinations:   [2]float64{0.123, 0.123},
		Masses:         [2]float64{1, 0.7},
		Eccentricity:   0.3,
	}
	if configPath != "" {
		wrap := io.DefaultSimulationWrapper()
		if err := gcfg.ReadFileInto(wrap, configPath); err != nil {
			log.Fatal(err.Error())
		}
		cfg = wrap.Simulation.GalaxyConfig()
	}

	s := sim.New()
	timeStep := simSecondsPerSecond / float64(ebiten.TPS())
	if err := s.SetInitial(cfg, timeStep); err != nil {
		log.Fatal(err.Error())
	}

	game := &Game{sim: s, scale: 18}
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("galcrash")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err.Error())
	}
}
