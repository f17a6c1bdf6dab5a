package rendereriface

import (
	"image"
	"image/color"

	"github.com/silbinarywolf/toy-pong/internal/input"
)

type ImageOptions struct {
	X, Y           float32
	ScaleX, ScaleY float32
}

type Image interface {
}

// Game interface was copy-pasted out of Ebiten, except Draw takes our Screen
type Game interface {
	Update() error
	Draw(screen Screen)
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

type App interface {
	SetWindowSize(screenWidth, screenHeight int)
	SetWindowTitle(title string)
	// RunGame drives the game loop, calling Update then Draw once per frame,
	// until Update returns an error
	RunGame(game Game) error
	NewImageFromImage(img image.Image) Image
	IsKeyPressed(key input.Key) bool
}

type Screen interface {
	Clear(c color.Color)
	DrawImage(img Image, options ImageOptions)
}
