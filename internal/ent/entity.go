// ent is the entity package
package ent

import (
	"github.com/silbinarywolf/toy-pong/internal/asset"
	"github.com/silbinarywolf/toy-pong/internal/gameconst"
	"github.com/silbinarywolf/toy-pong/internal/geom"
)

type Entity struct {
	// Sprite is drawn at Pos
	Sprite asset.ID
	// Size is the pixel size of Sprite
	Size geom.Vec2
	Pos  geom.Vec2
	Vel  geom.Vec2
}

// New creates a stationary entity sized to its sprite
func New(sprites asset.Provider, sprite asset.ID, pos geom.Vec2) Entity {
	return NewWithVelocity(sprites, sprite, pos, geom.Vec2{})
}

func NewWithVelocity(sprites asset.Provider, sprite asset.ID, pos, vel geom.Vec2) Entity {
	width, height := sprites.Size(sprite)
	return Entity{
		Sprite: sprite,
		Size: geom.Vec2{
			X: float32(width),
			Y: float32(height),
		},
		Pos: pos,
		Vel: vel,
	}
}

func (self *Entity) Width() float32 {
	return self.Size.X
}

func (self *Entity) Height() float32 {
	return self.Size.Y
}

// HitsTop is true when the entity is within EdgeMargin of the top edge
func (self *Entity) HitsTop() bool {
	return self.Pos.Y <= gameconst.EdgeMargin
}

// HitsBottom is true when the entity is within EdgeMargin of the bottom edge
func (self *Entity) HitsBottom() bool {
	return self.Pos.Y+self.Height() >= gameconst.ScreenHeight-gameconst.EdgeMargin
}

func (self *Entity) Bounds() geom.Rect {
	return geom.Rect{
		X:      self.Pos.X,
		Y:      self.Pos.Y,
		Width:  self.Width(),
		Height: self.Height(),
	}
}
