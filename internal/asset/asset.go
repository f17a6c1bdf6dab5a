// asset loads sprites from disk and hands out IDs for them. The game only
// ever holds IDs, the renderer images stay owned by the Library.
package asset

import (
	"image"
	_ "image/png"
	"io/fs"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/silbinarywolf/toy-pong/internal/renderer"
)

// Sprite paths, relative to the working directory
const (
	Paddle1Path = "resources/paddle1.png"
	Paddle2Path = "resources/paddle2.png"
	BallPath    = "resources/ball.png"
)

// ID refers to a loaded sprite. The zero value is never handed out.
type ID int32

// Provider loads sprites and reports their pixel size
type Provider interface {
	Load(path string) (ID, error)
	Size(id ID) (width, height int)
}

// Uploader turns a decoded image into a renderer image, this is
// renderer.App in practice
type Uploader interface {
	NewImageFromImage(img image.Image) renderer.Image
}

type sprite struct {
	path          string
	image         renderer.Image
	width, height int
}

// Library is a Provider that reads sprites from a file system
type Library struct {
	fsys     fs.FS
	uploader Uploader
	// sprites is indexed by ID-1
	sprites []sprite
	byPath  map[string]ID
}

var _ Provider = new(Library)

func NewLibrary(fsys fs.FS, uploader Uploader) *Library {
	return &Library{
		fsys:     fsys,
		uploader: uploader,
		byPath:   make(map[string]ID),
	}
}

// Load decodes the image at path (png, bmp or webp). Loading a path that
// was already loaded returns the same ID.
func (lib *Library) Load(path string) (ID, error) {
	if id, ok := lib.byPath[path]; ok {
		return id, nil
	}
	f, err := lib.fsys.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "unable to load sprite %q", path)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return 0, errors.Wrapf(err, "unable to decode sprite %q", path)
	}
	size := img.Bounds().Size()
	lib.sprites = append(lib.sprites, sprite{
		path:   path,
		image:  lib.uploader.NewImageFromImage(img),
		width:  size.X,
		height: size.Y,
	})
	id := ID(len(lib.sprites))
	lib.byPath[path] = id
	return id, nil
}

func (lib *Library) get(id ID) *sprite {
	if id <= 0 || int(id) > len(lib.sprites) {
		return nil
	}
	return &lib.sprites[id-1]
}

// Size returns the pixel size of the sprite, zero for an unknown ID
func (lib *Library) Size(id ID) (width, height int) {
	s := lib.get(id)
	if s == nil {
		return 0, 0
	}
	return s.width, s.height
}

// Image returns the renderer image for the sprite, nil for an unknown ID
func (lib *Library) Image(id ID) renderer.Image {
	s := lib.get(id)
	if s == nil {
		return nil
	}
	return s.image
}

// Path returns the path the sprite was loaded from
func (lib *Library) Path(id ID) string {
	s := lib.get(id)
	if s == nil {
		return ""
	}
	return s.path
}
