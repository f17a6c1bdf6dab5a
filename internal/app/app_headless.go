//go:build headless

package app

import (
	"github.com/silbinarywolf/toy-pong/internal/audio"
	"github.com/silbinarywolf/toy-pong/internal/renderer"
	"github.com/silbinarywolf/toy-pong/internal/renderer/headless"
)

func getRenderDriver() (renderer.App, string) {
	return new(headless.App), "headless"
}

func getSound() audio.Sound {
	return audio.Nop{}
}
