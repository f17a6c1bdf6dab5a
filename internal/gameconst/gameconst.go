// gameconst holds the fixed values of the game. Nothing here is configurable
// at runtime.
package gameconst

import "image/color"

const (
	// ScreenWidth is the logical width of the play-field in pixels
	ScreenWidth = 640
	// ScreenHeight is the logical height of the play-field in pixels
	ScreenHeight = 480

	WindowTitle = "Pong"
)

const (
	// PaddleSpeed is how far a paddle moves per frame while a key is held
	PaddleSpeed float32 = 8
	// BallSpeed is the horizontal speed the ball starts with
	BallSpeed float32 = 5
	// EdgeMargin is the distance from the top/bottom edge at which a paddle
	// stops moving
	EdgeMargin float32 = 4
	// PaddleInset is the gap between a paddle and its side of the window
	PaddleInset float32 = 16
)

// BackgroundColor is cornflower blue
var BackgroundColor = color.RGBA{R: 100, G: 149, B: 237, A: 255}
