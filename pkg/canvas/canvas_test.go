package canvas

import (
	"bytes"
	stderrors "errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/wallpaper/pkg/errors"
)

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func TestNew(t *testing.T) {
	c, err := New(40, 30)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.Width() != 40 || c.Height() != 30 {
		t.Errorf("size = %dx%d, want 40x30", c.Width(), c.Height())
	}
	if got := nrgbaAt(c.Image(), 5, 5); got.A != 0 {
		t.Errorf("new canvas pixel = %v, want transparent", got)
	}
}

func TestNewInvalidSize(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, 5}} {
		if _, err := New(size[0], size[1]); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("New(%d, %d) error = %v, want INVALID_INPUT", size[0], size[1], err)
		}
	}
}

func TestFillRect(t *testing.T) {
	c, _ := New(20, 20)
	red := color.NRGBA{R: 255, A: 255}
	c.FillRect(5, 5, 10, 10, red)

	if got := nrgbaAt(c.Image(), 10, 10); got != red {
		t.Errorf("inside pixel = %v, want %v", got, red)
	}
	if got := nrgbaAt(c.Image(), 2, 2); got.A != 0 {
		t.Errorf("outside pixel = %v, want transparent", got)
	}
}

func TestFillLinearGradientPads(t *testing.T) {
	c, _ := New(50, 10)
	black := color.NRGBA{A: 255}
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	// Gradient vector covers only the middle of the canvas.
	c.FillLinearGradient(Point{X: 20, Y: 0}, Point{X: 30, Y: 0}, black, white)

	if got := nrgbaAt(c.Image(), 0, 5); got != black {
		t.Errorf("left of gradient = %v, want %v", got, black)
	}
	if got := nrgbaAt(c.Image(), 49, 5); got != white {
		t.Errorf("right of gradient = %v, want %v", got, white)
	}
	mid := nrgbaAt(c.Image(), 25, 5)
	if mid.R < 64 || mid.R > 192 {
		t.Errorf("middle of gradient = %v, want a grey", mid)
	}
}

func TestStrokeAndFillPolygon(t *testing.T) {
	c, _ := New(20, 20)
	fill := color.NRGBA{G: 255, A: 255}
	square := []Point{{2, 2}, {18, 2}, {18, 18}, {2, 18}}
	c.StrokeAndFillPolygon(square, color.NRGBA{A: 255}, 1, fill)

	if got := nrgbaAt(c.Image(), 10, 10); got != fill {
		t.Errorf("inside pixel = %v, want %v", got, fill)
	}
	if got := nrgbaAt(c.Image(), 0, 0); got.A != 0 {
		t.Errorf("outside pixel = %v, want transparent", got)
	}
}

func TestStrokeAndFillPolygonDegenerate(t *testing.T) {
	c, _ := New(10, 10)
	c.StrokeAndFillPolygon([]Point{{1, 1}}, color.Black, 1, color.White)
	if got := nrgbaAt(c.Image(), 1, 1); got.A != 0 {
		t.Errorf("pixel = %v, want untouched canvas", got)
	}
}

func TestEncodePNG(t *testing.T) {
	c, _ := New(16, 9)
	c.FillRect(0, 0, 16, 9, color.NRGBA{B: 255, A: 255})

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 9 {
		t.Errorf("decoded size = %v, want 16x9", b)
	}
}

func TestWritePNG(t *testing.T) {
	c, _ := New(8, 8)
	path := filepath.Join(t.TempDir(), "out.png")
	if err := c.WritePNG(path); err != nil {
		t.Fatalf("WritePNG() error = %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("output file missing or empty: %v", err)
	}
}

func TestWritePNGFailure(t *testing.T) {
	c, _ := New(8, 8)
	path := filepath.Join(t.TempDir(), "missing", "out.png")

	err := c.WritePNG(path)
	if !errors.Is(err, errors.ErrCodeOutputWrite) {
		t.Fatalf("WritePNG() error = %v, want OUTPUT_WRITE", err)
	}
	msg := errors.UserMessage(err)
	if !strings.Contains(msg, path) {
		t.Errorf("message %q does not name the path", msg)
	}
	if !strings.Contains(msg, "no such file or directory") {
		t.Errorf("message %q does not include the cause", msg)
	}
}

func TestStrokeAndFillPolygonBevelJoin(t *testing.T) {
	c, _ := New(100, 100)
	black := color.NRGBA{A: 255}
	// Start mid-edge so the top-left corner is an interior join.
	square := []Point{{50, 20}, {80, 20}, {80, 80}, {20, 80}, {20, 20}}
	c.StrokeAndFillPolygon(square, black, 20, color.Transparent)

	// The bevel cuts the corner along x+y = 30; a round or miter join
	// would also cover (13, 13).
	if got := nrgbaAt(c.Image(), 13, 13); got.A != 0 {
		t.Errorf("pixel beyond bevel = %v, want transparent", got)
	}
	if got := nrgbaAt(c.Image(), 17, 17); got != black {
		t.Errorf("pixel inside bevel = %v, want %v", got, black)
	}
	if got := nrgbaAt(c.Image(), 50, 15); got != black {
		t.Errorf("pixel on outline = %v, want %v", got, black)
	}
}

func TestWritePNGReplacesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, _ := New(4, 4)
	if err := c.WritePNG(path); err != nil {
		t.Fatalf("WritePNG() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("replaced file is not a PNG: %v", err)
	}
}

func TestWriteEncodedFailureKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wall.png")
	if err := os.WriteFile(path, []byte("previous wallpaper"), 0o644); err != nil {
		t.Fatal(err)
	}

	failing := func(w io.Writer) error {
		_, _ = w.Write([]byte("partial"))
		return stderrors.New("encoder failed")
	}
	err := writeEncoded(path, failing)
	if !errors.Is(err, errors.ErrCodeOutputWrite) {
		t.Fatalf("writeEncoded() error = %v, want OUTPUT_WRITE", err)
	}
	if msg := errors.UserMessage(err); !strings.Contains(msg, "encoder failed") {
		t.Errorf("message %q does not include the cause", msg)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "previous wallpaper" {
		t.Errorf("file content = %q, want it untouched", data)
	}
}

func TestWriteEncodedFailureCreatesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.png")
	err := writeEncoded(path, func(io.Writer) error { return stderrors.New("boom") })
	if err == nil {
		t.Fatal("writeEncoded() succeeded, want error")
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("file created after encode failure: %v", statErr)
	}
}
