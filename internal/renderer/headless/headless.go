// headless is the headless mode driver for the game so we can run the
// simulation without a window, and without building ebiten into the binary
package headless

import (
	"image"
	"image/color"
	"time"

	"github.com/silbinarywolf/toy-pong/internal/input"
	"github.com/silbinarywolf/toy-pong/internal/renderer/internal/rendereriface"
)

var _ rendereriface.App = new(App)

const tickInterval = 16 * time.Millisecond

type App struct {
	// Frames is how many frames RunGame steps before returning. Zero runs
	// until Update returns an error.
	Frames int
	// Keys are reported as held on every frame
	Keys input.HeldKeys
	// BeforeFrame is called with the frame number before each Update
	BeforeFrame func(frame int)
	// Screen holds what was drawn on the most recent frame
	Screen Screen

	Width, Height int
	Title         string
}

func (app *App) SetWindowSize(width, height int) {
	app.Width = width
	app.Height = height
}

func (app *App) SetWindowTitle(title string) {
	app.Title = title
}

func (app *App) IsKeyPressed(key input.Key) bool {
	return app.Keys.IsKeyPressed(key)
}

func (app *App) RunGame(game rendereriface.Game) error {
	if app.Frames > 0 {
		for frame := 0; frame < app.Frames; frame++ {
			if err := app.step(game, frame); err != nil {
				return err
			}
		}
		return nil
	}

	// note: this doesn't try to match the Ebiten clock, a plain ticker is
	// close enough for a headless run
	tick := time.NewTicker(tickInterval)
	defer tick.Stop()
	for frame := 0; ; frame++ {
		<-tick.C
		if err := app.step(game, frame); err != nil {
			return err
		}
	}
}

func (app *App) step(game rendereriface.Game, frame int) error {
	if app.BeforeFrame != nil {
		app.BeforeFrame(frame)
	}
	if err := game.Update(); err != nil {
		return err
	}
	game.Draw(&app.Screen)
	return nil
}

func (app *App) NewImageFromImage(img image.Image) rendereriface.Image {
	size := img.Bounds().Size()
	return &Image{
		Width:  size.X,
		Height: size.Y,
	}
}

// Image only remembers the size of what it was created from
type Image struct {
	Width, Height int
}

// DrawCall is a single DrawImage recorded by Screen
type DrawCall struct {
	Image   rendereriface.Image
	Options rendereriface.ImageOptions
}

type Screen struct {
	// Frames counts how many times the screen was cleared
	Frames     int
	ClearColor color.Color
	Draws      []DrawCall
}

var _ rendereriface.Screen = new(Screen)

// Clear starts a new frame, dropping the draw calls of the previous one
func (screen *Screen) Clear(c color.Color) {
	screen.Frames++
	screen.ClearColor = c
	screen.Draws = screen.Draws[:0]
}

func (screen *Screen) DrawImage(img rendereriface.Image, options rendereriface.ImageOptions) {
	screen.Draws = append(screen.Draws, DrawCall{
		Image:   img,
		Options: options,
	})
}
