package renderer

import (
	"github.com/silbinarywolf/toy-pong/internal/renderer/internal/rendereriface"
)

// ImageOptions are draw options for an image
type ImageOptions = rendereriface.ImageOptions

// Image is a sprite loaded by the renderer
type Image = rendereriface.Image

type Screen = rendereriface.Screen

// Game is what a driver runs, one Update and one Draw per frame
type Game = rendereriface.Game

// App is the implementation of the renderer, see the ebiten, headless and
// terminal packages
type App = rendereriface.App
