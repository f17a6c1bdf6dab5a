package ent

import (
	"testing"

	"github.com/silbinarywolf/toy-pong/internal/asset"
	"github.com/silbinarywolf/toy-pong/internal/geom"
)

type fixedSizes map[asset.ID][2]int

func (sizes fixedSizes) Load(path string) (asset.ID, error) {
	return 0, nil
}

func (sizes fixedSizes) Size(id asset.ID) (int, int) {
	size := sizes[id]
	return size[0], size[1]
}

const paddleSprite asset.ID = 1

var sprites = fixedSizes{paddleSprite: {16, 80}}

type edgeCase struct {
	Y          float32
	HitsTop    bool
	HitsBottom bool
}

// a paddle is 80 high on a 480 high field, so it touches the bottom from
// y = 480 - 4 - 80 = 396
var edgeTests = []edgeCase{
	{Y: -20, HitsTop: true},
	{Y: 0, HitsTop: true},
	{Y: 4, HitsTop: true},
	{Y: 4.5},
	{Y: 200},
	{Y: 395.5},
	{Y: 396, HitsBottom: true},
	{Y: 400, HitsBottom: true},
	{Y: 600, HitsBottom: true},
}

func TestHitsTopAndBottom(t *testing.T) {
	for _, test := range edgeTests {
		paddle := New(sprites, paddleSprite, geom.Vec2{X: 16, Y: test.Y})
		if res := paddle.HitsTop(); res != test.HitsTop {
			t.Errorf("HitsTop at y=%v returned %v but expected %v", test.Y, res, test.HitsTop)
		}
		if res := paddle.HitsBottom(); res != test.HitsBottom {
			t.Errorf("HitsBottom at y=%v returned %v but expected %v", test.Y, res, test.HitsBottom)
		}
	}
}

func TestBounds(t *testing.T) {
	paddle := New(sprites, paddleSprite, geom.Vec2{X: 16, Y: 200})
	want := geom.Rect{X: 16, Y: 200, Width: 16, Height: 80}
	if got := paddle.Bounds(); got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestNewWithVelocity(t *testing.T) {
	ball := NewWithVelocity(sprites, paddleSprite, geom.Vec2{X: 1, Y: 2}, geom.Vec2{X: -5})
	if ball.Vel.X != -5 || ball.Vel.Y != 0 {
		t.Errorf("expected velocity (-5, 0), got (%v, %v)", ball.Vel.X, ball.Vel.Y)
	}
	if ball.Width() != 16 || ball.Height() != 80 {
		t.Errorf("expected size from the provider, got %vx%v", ball.Width(), ball.Height())
	}

	still := New(sprites, paddleSprite, geom.Vec2{})
	if still.Vel != (geom.Vec2{}) {
		t.Errorf("expected zero velocity, got %+v", still.Vel)
	}
}
