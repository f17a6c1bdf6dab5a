//go:build !headless && !tui

package app

import (
	"github.com/silbinarywolf/toy-pong/internal/audio"
	"github.com/silbinarywolf/toy-pong/internal/renderer"
	"github.com/silbinarywolf/toy-pong/internal/renderer/ebiten"
)

func getRenderDriver() (renderer.App, string) {
	return new(ebiten.App), "ebiten"
}

func getSound() audio.Sound {
	return newSpeakerOrNop()
}
