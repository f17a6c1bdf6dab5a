package world

import (
	"github.com/silbinarywolf/toy-pong/internal/asset"
	"github.com/silbinarywolf/toy-pong/internal/gameconst"
	"github.com/silbinarywolf/toy-pong/internal/geom"
	"github.com/silbinarywolf/toy-pong/internal/renderer"
)

// Sprite is a sprite to draw and where to draw it
type Sprite struct {
	ID  asset.ID
	Pos geom.Vec2
}

// Snapshot is what the draw rule needs from a State, in draw order
type Snapshot struct {
	Sprites [3]Sprite
}

func (state *State) Snapshot() Snapshot {
	return Snapshot{
		Sprites: [3]Sprite{
			{ID: state.Player1.Sprite, Pos: state.Player1.Pos},
			{ID: state.Player2.Sprite, Pos: state.Player2.Pos},
			{ID: state.Ball.Sprite, Pos: state.Ball.Pos},
		},
	}
}

// Images resolves sprite IDs to renderer images, see asset.Library
type Images interface {
	Image(id asset.ID) renderer.Image
}

// Draw clears the screen and draws paddle 1, paddle 2 then the ball
func Draw(screen renderer.Screen, images Images, snap Snapshot) {
	screen.Clear(gameconst.BackgroundColor)
	for _, sprite := range snap.Sprites {
		screen.DrawImage(images.Image(sprite.ID), renderer.ImageOptions{
			X: sprite.Pos.X,
			Y: sprite.Pos.Y,
		})
	}
}
