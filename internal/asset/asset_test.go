package asset

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"golang.org/x/image/bmp"

	"github.com/silbinarywolf/toy-pong/internal/renderer"
)

type uploadedImage struct {
	bounds image.Rectangle
}

type fakeUploader struct {
	uploads int
}

func (up *fakeUploader) NewImageFromImage(img image.Image) renderer.Image {
	up.uploads++
	return &uploadedImage{bounds: img.Bounds()}
}

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func encodeBMP(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		t.Fatalf("encode bmp: %v", err)
	}
	return buf.Bytes()
}

func testFS(t *testing.T) fs.FS {
	return fstest.MapFS{
		Paddle1Path:          {Data: encodePNG(t, 16, 80)},
		Paddle2Path:          {Data: encodePNG(t, 16, 80)},
		BallPath:             {Data: encodePNG(t, 16, 16)},
		"resources/ball.bmp": {Data: encodeBMP(t, 12, 12)},
		"resources/junk.png": {Data: []byte("not an image")},
	}
}

func TestLibraryLoad(t *testing.T) {
	up := &fakeUploader{}
	lib := NewLibrary(testFS(t), up)

	paddle, err := lib.Load(Paddle1Path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ball, err := lib.Load(BallPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paddle == 0 || ball == 0 || paddle == ball {
		t.Fatalf("expected distinct non-zero IDs, got %d and %d", paddle, ball)
	}

	if w, h := lib.Size(paddle); w != 16 || h != 80 {
		t.Errorf("expected paddle 16x80, got %dx%d", w, h)
	}
	if w, h := lib.Size(ball); w != 16 || h != 16 {
		t.Errorf("expected ball 16x16, got %dx%d", w, h)
	}
	img, ok := lib.Image(paddle).(*uploadedImage)
	if !ok || img.bounds.Dx() != 16 {
		t.Errorf("expected the uploaded paddle image, got %#v", lib.Image(paddle))
	}
	if lib.Path(ball) != BallPath {
		t.Errorf("expected path %q, got %q", BallPath, lib.Path(ball))
	}
	if up.uploads != 2 {
		t.Errorf("expected 2 uploads, got %d", up.uploads)
	}
}

func TestLibraryLoadSamePathTwice(t *testing.T) {
	up := &fakeUploader{}
	lib := NewLibrary(testFS(t), up)

	first, err := lib.Load(Paddle2Path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := lib.Load(Paddle2Path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("expected the same ID, got %d and %d", first, second)
	}
	if up.uploads != 1 {
		t.Errorf("expected the image to be uploaded once, got %d", up.uploads)
	}
}

func TestLibraryLoadBMP(t *testing.T) {
	lib := NewLibrary(testFS(t), &fakeUploader{})
	id, err := lib.Load("resources/ball.bmp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w, h := lib.Size(id); w != 12 || h != 12 {
		t.Errorf("expected 12x12, got %dx%d", w, h)
	}
}

func TestLibraryLoadErrors(t *testing.T) {
	lib := NewLibrary(testFS(t), &fakeUploader{})

	tests := []string{
		"resources/missing.png",
		"resources/junk.png",
	}
	for _, path := range tests {
		id, err := lib.Load(path)
		if err == nil {
			t.Errorf("expected an error loading %q", path)
			continue
		}
		if id != 0 {
			t.Errorf("expected zero ID on error, got %d", id)
		}
		if !strings.Contains(err.Error(), path) {
			t.Errorf("expected error to name %q, got %v", path, err)
		}
	}
}

func TestLibraryUnknownID(t *testing.T) {
	lib := NewLibrary(testFS(t), &fakeUploader{})
	for _, id := range []ID{0, -1, 5} {
		if w, h := lib.Size(id); w != 0 || h != 0 {
			t.Errorf("expected zero size for ID %d, got %dx%d", id, w, h)
		}
		if lib.Image(id) != nil {
			t.Errorf("expected nil image for ID %d", id)
		}
	}
}
