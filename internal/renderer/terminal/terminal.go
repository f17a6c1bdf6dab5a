// terminal draws the game into a terminal with tcell. Sprites become blocks
// of their average color, scaled from the logical play-field to the
// terminal's cell grid.
package terminal

import (
	"image"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/silbinarywolf/toy-pong/internal/input"
	"github.com/silbinarywolf/toy-pong/internal/renderer/internal/rendereriface"
)

var _ rendereriface.App = new(App)

const (
	tickInterval = 16 * time.Millisecond
	// heldTicks is how many ticks a key stays held after its last press.
	// Terminals report presses and auto-repeat, never releases.
	heldTicks = 8
	blockChar = '█'
)

type App struct {
	// NewScreen creates the tcell screen, tcell.NewScreen if nil
	NewScreen func() (tcell.Screen, error)

	tick      int
	lastPress map[input.Key]int
}

func (app *App) SetWindowSize(width, height int) {
	// n/a for terminal, the play-field is scaled to fit
}

func (app *App) SetWindowTitle(title string) {
	// n/a for terminal
}

func (app *App) IsKeyPressed(key input.Key) bool {
	last, ok := app.lastPress[key]
	return ok && app.tick-last < heldTicks
}

func (app *App) NewImageFromImage(img image.Image) rendereriface.Image {
	size := img.Bounds().Size()
	return &Image{
		Width:  size.X,
		Height: size.Y,
		Color:  averageColor(img),
	}
}

func (app *App) RunGame(game rendereriface.Game) error {
	newScreen := app.NewScreen
	if newScreen == nil {
		newScreen = tcell.NewScreen
	}
	s, err := newScreen()
	if err != nil {
		return errors.Wrap(err, "unable to create terminal screen")
	}
	if err := s.Init(); err != nil {
		return errors.Wrap(err, "unable to initialize terminal screen")
	}
	defer s.Fini()
	s.HideCursor()
	return app.run(s, game)
}

func (app *App) run(s tcell.Screen, game rendereriface.Game) error {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	screen := Screen{screen: s}
	for {
		select {
		case ev := <-events:
			app.handleEvent(s, ev)
		case <-ticker.C:
			app.tick++
			if err := game.Update(); err != nil {
				return err
			}
			cols, rows := s.Size()
			screen.width, screen.height = game.Layout(cols, rows)
			game.Draw(&screen)
			s.Show()
		}
	}
}

func (app *App) handleEvent(s tcell.Screen, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		key := keyFromEvent(ev.Key(), ev.Rune())
		if key == input.KeyUnknown {
			return
		}
		if app.lastPress == nil {
			app.lastPress = make(map[input.Key]int)
		}
		app.lastPress[key] = app.tick
	case *tcell.EventResize:
		s.Sync()
	}
}

// keyFromEvent converts a terminal key event to a game key
func keyFromEvent(key tcell.Key, r rune) input.Key {
	switch key {
	case tcell.KeyUp:
		return input.KeyUp
	case tcell.KeyDown:
		return input.KeyDown
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.KeyEscape
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return input.KeyW
		case 's', 'S':
			return input.KeyS
		}
	}
	return input.KeyUnknown
}

// Image is a sprite reduced to its size and a single color
type Image struct {
	Width, Height int
	Color         tcell.Color
}

// averageColor of the visible pixels of img, white if there are none
func averageColor(img image.Image) tcell.Color {
	var r, g, b, n uint64
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pr, pg, pb, pa := img.At(x, y).RGBA()
			if pa == 0 {
				continue
			}
			r += uint64(pr >> 8)
			g += uint64(pg >> 8)
			b += uint64(pb >> 8)
			n++
		}
	}
	if n == 0 {
		return tcell.ColorWhite
	}
	return tcell.NewRGBColor(int32(r/n), int32(g/n), int32(b/n))
}

func toColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// Screen maps the logical play-field onto the terminal cells
type Screen struct {
	screen tcell.Screen
	// width and height are the logical size from Game.Layout
	width, height int
}

var _ rendereriface.Screen = new(Screen)

func (driver *Screen) Clear(c color.Color) {
	driver.screen.Fill(' ', tcell.StyleDefault.Background(toColor(c)))
}

func (driver *Screen) DrawImage(img rendereriface.Image, options rendereriface.ImageOptions) {
	sprite := img.(*Image)
	scaleX, scaleY := options.ScaleX, options.ScaleY
	if scaleX == 0 || scaleY == 0 {
		scaleX, scaleY = 1, 1
	}
	x0, x1 := driver.cellSpan(options.X, float32(sprite.Width)*scaleX, true)
	y0, y1 := driver.cellSpan(options.Y, float32(sprite.Height)*scaleY, false)

	cols, rows := driver.screen.Size()
	style := tcell.StyleDefault.Foreground(sprite.Color).Background(sprite.Color)
	for y := y0; y < y1; y++ {
		if y < 0 || y >= rows {
			continue
		}
		for x := x0; x < x1; x++ {
			if x < 0 || x >= cols {
				continue
			}
			driver.screen.SetContent(x, y, blockChar, nil, style)
		}
	}
}

// cellSpan converts a logical start and length on one axis to a half-open
// range of cells. Anything on screen covers at least one cell.
func (driver *Screen) cellSpan(start, length float32, horizontal bool) (int, int) {
	cols, rows := driver.screen.Size()
	cells, logical := rows, driver.height
	if horizontal {
		cells, logical = cols, driver.width
	}
	if logical <= 0 {
		return 0, 0
	}
	scale := float32(cells) / float32(logical)
	from := int(start * scale)
	to := int((start + length) * scale)
	if to <= from {
		to = from + 1
	}
	return from, to
}
