package world

import (
	"github.com/silbinarywolf/toy-pong/internal/asset"
	"github.com/silbinarywolf/toy-pong/internal/ent"
	"github.com/silbinarywolf/toy-pong/internal/gameconst"
	"github.com/silbinarywolf/toy-pong/internal/geom"
	"github.com/silbinarywolf/toy-pong/internal/input"
)

// Hit says which paddle, if any, the ball touched on a frame
type Hit int

const (
	HitNone Hit = iota
	HitPlayer1
	HitPlayer2
)

func (hit Hit) String() string {
	switch hit {
	case HitPlayer1:
		return "player1"
	case HitPlayer2:
		return "player2"
	}
	return "none"
}

// Effects are the things an Update did that the app may want to react to
type Effects struct {
	Hit Hit
}

// State is everything in the game. There is no scoring and the ball
// isn't reset, so it's free to leave the field.
type State struct {
	Player1 ent.Entity
	Player2 ent.Entity
	Ball    ent.Entity
}

// New loads the sprites and places the paddles at either side and the ball
// in the middle, heading left
func New(sprites asset.Provider) (*State, error) {
	paddle1, err := sprites.Load(asset.Paddle1Path)
	if err != nil {
		return nil, err
	}
	paddle2, err := sprites.Load(asset.Paddle2Path)
	if err != nil {
		return nil, err
	}
	ball, err := sprites.Load(asset.BallPath)
	if err != nil {
		return nil, err
	}

	const (
		width  float32 = gameconst.ScreenWidth
		height float32 = gameconst.ScreenHeight
	)
	state := &State{
		Player1: ent.New(sprites, paddle1, geom.Vec2{}),
		Player2: ent.New(sprites, paddle2, geom.Vec2{}),
		Ball: ent.NewWithVelocity(sprites, ball, geom.Vec2{}, geom.Vec2{
			X: -gameconst.BallSpeed,
		}),
	}
	state.Player1.Pos = geom.Vec2{
		X: gameconst.PaddleInset,
		Y: (height - state.Player1.Height()) / 2,
	}
	state.Player2.Pos = geom.Vec2{
		X: width - state.Player2.Width() - gameconst.PaddleInset,
		Y: (height - state.Player2.Height()) / 2,
	}
	state.Ball.Pos = geom.Vec2{
		X: width/2 - state.Ball.Width()/2,
		Y: height/2 - state.Ball.Height()/2,
	}
	return state, nil
}

// Update steps the game by one frame
func (state *State) Update(in input.Frame) Effects {
	movePaddle(&state.Player1, in.Player1Up, in.Player1Down)
	movePaddle(&state.Player2, in.Player2Up, in.Player2Down)

	player1Bounds := state.Player1.Bounds()
	player2Bounds := state.Player2.Bounds()
	ballBounds := state.Ball.Bounds()

	// Only one paddle can be hit per frame, player 1 is checked first
	var fx Effects
	switch {
	case ballBounds.Intersects(player1Bounds):
		fx.Hit = HitPlayer1
	case ballBounds.Intersects(player2Bounds):
		fx.Hit = HitPlayer2
	}
	if fx.Hit != HitNone {
		state.Ball.Vel.X = -state.Ball.Vel.X
	}
	state.Ball.Pos = state.Ball.Pos.Add(state.Ball.Vel)
	return fx
}

func movePaddle(paddle *ent.Entity, up, down bool) {
	if up && !paddle.HitsTop() {
		paddle.Pos.Y -= gameconst.PaddleSpeed
	}
	if down && !paddle.HitsBottom() {
		paddle.Pos.Y += gameconst.PaddleSpeed
	}
}
