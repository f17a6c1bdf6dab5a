package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/silbinarywolf/toy-pong/internal/input"
	"github.com/silbinarywolf/toy-pong/internal/renderer/internal/rendereriface"
)

var _ rendereriface.App = new(App)

var keys = map[input.Key]ebiten.Key{
	input.KeyW:      ebiten.KeyW,
	input.KeyS:      ebiten.KeyS,
	input.KeyUp:     ebiten.KeyArrowUp,
	input.KeyDown:   ebiten.KeyArrowDown,
	input.KeyEscape: ebiten.KeyEscape,
}

type App struct {
}

type ebitenGameAndScreen struct {
	rendereriface.Game
	screenDriver Screen
}

func (game *ebitenGameAndScreen) Draw(screen *ebiten.Image) {
	game.screenDriver.screen = screen
	game.Game.Draw(&game.screenDriver)
}

func (app *App) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

func (app *App) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

func (app *App) NewImageFromImage(img image.Image) rendereriface.Image {
	return ebiten.NewImageFromImage(img)
}

func (app *App) IsKeyPressed(key input.Key) bool {
	ebitenKey, ok := keys[key]
	if !ok {
		return false
	}
	return ebiten.IsKeyPressed(ebitenKey)
}

func (app *App) RunGame(game rendereriface.Game) error {
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	gameWrapper := ebitenGameAndScreen{}
	gameWrapper.Game = game
	return ebiten.RunGame(&gameWrapper)
}

type Screen struct {
	screen *ebiten.Image
}

var _ rendereriface.Screen = new(Screen)

func (driver *Screen) Clear(c color.Color) {
	driver.screen.Fill(c)
}

func (driver *Screen) DrawImage(img rendereriface.Image, options rendereriface.ImageOptions) {
	op := &ebiten.DrawImageOptions{}
	if options.ScaleX != 0 && options.ScaleY != 0 {
		op.GeoM.Scale(float64(options.ScaleX), float64(options.ScaleY))
	}
	op.GeoM.Translate(float64(options.X), float64(options.Y))
	driver.screen.DrawImage(img.(*ebiten.Image), op)
}
