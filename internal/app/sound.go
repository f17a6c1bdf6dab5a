//go:build !headless

package app

import "github.com/silbinarywolf/toy-pong/internal/audio"

// newSpeakerOrNop falls back to silence, the game works without sound
func newSpeakerOrNop() audio.Sound {
	sound, err := audio.NewSpeaker()
	if err != nil {
		logger().Warn("audio disabled", "err", err)
		return audio.Nop{}
	}
	return sound
}
