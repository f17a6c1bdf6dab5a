package input

// Key represents a keyboard key.
type Key int32

// Only defining keys used by this game
//
// Each renderer driver maps these onto its own key codes so that
// this package doesn't pull in ebiten or tcell.
const (
	KeyUnknown Key = iota
	KeyW
	KeyS
	KeyUp
	KeyDown
	KeyEscape
)

func (key Key) String() string {
	switch key {
	case KeyW:
		return "W"
	case KeyS:
		return "S"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyEscape:
		return "Escape"
	}
	return "Unknown"
}

// KeySource reports whether a key is currently held down
type KeySource interface {
	IsKeyPressed(key Key) bool
}

// Frame is the state of the keys the game cares about, sampled once
// at the start of a frame
type Frame struct {
	Player1Up   bool
	Player1Down bool
	Player2Up   bool
	Player2Down bool
	Quit        bool
}

// Poll samples the key source
func Poll(src KeySource) Frame {
	return Frame{
		Player1Up:   src.IsKeyPressed(KeyW),
		Player1Down: src.IsKeyPressed(KeyS),
		Player2Up:   src.IsKeyPressed(KeyUp),
		Player2Down: src.IsKeyPressed(KeyDown),
		Quit:        src.IsKeyPressed(KeyEscape),
	}
}

// HeldKeys is a KeySource backed by a set. Useful for tests and for
// drivers that track key state themselves.
type HeldKeys map[Key]bool

func (keys HeldKeys) IsKeyPressed(key Key) bool {
	return keys[key]
}
