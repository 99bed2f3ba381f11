package ocr

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

// stripes returns a white image with a black vertical bar in its middle third.
func stripes(w, h int) *image.NRGBA {
	img := imaging.New(w, h, color.NRGBA{255, 255, 255, 255})
	for y := 0; y < h; y++ {
		for x := w / 3; x < 2*w/3; x++ {
			img.SetNRGBA(x, y, color.NRGBA{10, 10, 10, 255})
		}
	}
	return img
}

func TestBinarize(t *testing.T) {
	out := binarize(stripes(30, 10), 128)
	if out.NRGBAAt(15, 5).R != 0 {
		t.Fatalf("bar pixel should be black")
	}
	if out.NRGBAAt(1, 5).R != 255 {
		t.Fatalf("background pixel should be white")
	}
}

func TestAdaptiveThreshold(t *testing.T) {
	out := adaptiveThreshold(stripes(30, 10), 4, 7)
	if b := out.Bounds(); b.Dx() != 30 || b.Dy() != 10 {
		t.Fatalf("unexpected bounds %v", b)
	}
	if out.NRGBAAt(10, 5).R != 0 {
		t.Fatalf("bar edge should be black")
	}
	if out.NRGBAAt(0, 0).R != 255 {
		t.Fatalf("far background should stay white")
	}
}

func TestDilateGrowsStrokes(t *testing.T) {
	img := imaging.New(5, 5, white)
	img.SetNRGBA(2, 2, black)
	out := dilate(img, 1)
	for _, p := range [][2]int{{2, 2}, {1, 2}, {3, 2}, {2, 1}, {2, 3}} {
		if out.NRGBAAt(p[0], p[1]).R != 0 {
			t.Fatalf("pixel %v should be black after dilation", p)
		}
	}
	if out.NRGBAAt(0, 0).R != 255 {
		t.Fatalf("corner should stay white")
	}
	if dilate(img, 0) != img {
		t.Fatalf("radius 0 must return the input")
	}
}

func TestPrepareUpscalesShortImages(t *testing.T) {
	cfg := DefaultConfig()
	out := prepare(stripes(60, 20), cfg)
	if out.Bounds().Dy() != upscaleHeight {
		t.Fatalf("height = %d, want %d", out.Bounds().Dy(), upscaleHeight)
	}

	cfg.MinHeight = 0
	cfg.Threshold = 0
	if out := prepare(stripes(60, 20), cfg); out.Bounds().Dy() != 20 {
		t.Fatalf("no upscale expected, got height %d", out.Bounds().Dy())
	}
}

func TestCleanText(t *testing.T) {
	in := "  GREEN   FIELDS \r\n\n\tTotal:  Rs. 40 \n   \n"
	want := "GREEN FIELDS\nTotal: Rs. 40"
	if got := cleanText(in); got != want {
		t.Fatalf("cleanText = %q, want %q", got, want)
	}
}
