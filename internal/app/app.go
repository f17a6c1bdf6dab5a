package app

import (
	"io/fs"
	"os"

	"github.com/pkg/errors"

	"github.com/silbinarywolf/toy-pong/internal/asset"
	"github.com/silbinarywolf/toy-pong/internal/audio"
	"github.com/silbinarywolf/toy-pong/internal/gameconst"
	"github.com/silbinarywolf/toy-pong/internal/input"
	"github.com/silbinarywolf/toy-pong/internal/renderer"
	"github.com/silbinarywolf/toy-pong/internal/world"
)

// ErrQuit is returned from Update when the player presses escape
var ErrQuit = errors.New("quit")

type App struct {
	renderer.App

	sound  audio.Sound
	fsys   fs.FS
	assets *asset.Library
	world  *world.State
}

// New creates an app that loads its sprites from fsys and draws with driver
func New(driver renderer.App, sound audio.Sound, fsys fs.FS) *App {
	if sound == nil {
		sound = audio.Nop{}
	}
	return &App{
		App:   driver,
		sound: sound,
		fsys:  fsys,
	}
}

// Init loads the sprites and sets up the game world
func (app *App) Init() error {
	app.assets = asset.NewLibrary(app.fsys, app.App)
	state, err := world.New(app.assets)
	if err != nil {
		return err
	}
	app.world = state

	log := logger()
	for _, e := range []struct {
		name string
		id   asset.ID
	}{
		{"player1", state.Player1.Sprite},
		{"player2", state.Player2.Sprite},
		{"ball", state.Ball.Sprite},
	} {
		w, h := app.assets.Size(e.id)
		log.Info("loaded sprite", "entity", e.name, "path", app.assets.Path(e.id), "width", w, "height", h)
	}
	return nil
}

// World is the game state, nil until Init succeeds
func (app *App) World() *world.State {
	return app.world
}

func (app *App) Update() error {
	in := input.Poll(app.App)
	if in.Quit {
		return ErrQuit
	}
	fx := app.world.Update(in)
	if fx.Hit != world.HitNone {
		logger().Debug("paddle hit", "paddle", fx.Hit, "x", app.world.Ball.Pos.X, "y", app.world.Ball.Pos.Y)
		app.sound.PaddleHit()
	}
	return nil
}

func (app *App) Draw(screen renderer.Screen) {
	world.Draw(screen, app.assets, app.world.Snapshot())
}

func (app *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return gameconst.ScreenWidth, gameconst.ScreenHeight
}

// Run loads everything and then blocks running the game until the player
// quits or the driver fails. Quitting is not an error.
func (app *App) Run() error {
	app.SetWindowSize(gameconst.ScreenWidth, gameconst.ScreenHeight)
	app.SetWindowTitle(gameconst.WindowTitle)
	if err := app.Init(); err != nil {
		return errors.Wrap(err, "unable to start game")
	}
	err := app.RunGame(app)
	if errors.Is(err, ErrQuit) {
		logger().Info("quit")
		return nil
	}
	return err
}

// StartApp runs the game with the driver picked at build time, loading
// sprites from the working directory
func StartApp() error {
	driver, name := getRenderDriver()
	logger().Info("starting", "driver", name)

	sound := getSound()
	defer sound.Close()

	app := New(driver, sound, os.DirFS("."))
	return app.Run()
}
