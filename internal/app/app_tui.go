//go:build tui && !headless

package app

import (
	"github.com/silbinarywolf/toy-pong/internal/audio"
	"github.com/silbinarywolf/toy-pong/internal/renderer"
	"github.com/silbinarywolf/toy-pong/internal/renderer/terminal"
)

func getRenderDriver() (renderer.App, string) {
	return new(terminal.App), "terminal"
}

func getSound() audio.Sound {
	return newSpeakerOrNop()
}
