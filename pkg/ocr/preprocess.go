package ocr

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// upscaleHeight is the height short scans are resized to before recognition.
const upscaleHeight = 1300

var (
	black = color.NRGBA{0, 0, 0, 255}
	white = color.NRGBA{255, 255, 255, 255}
)

// prepare turns a phone photo of a bill into a high-contrast page for Tesseract.
func prepare(img image.Image, cfg Config) image.Image {
	gray := imaging.Grayscale(img)
	gray = imaging.AdjustContrast(gray, 15)
	gray = imaging.Sharpen(gray, 0.7)
	if cfg.MinHeight > 0 && gray.Bounds().Dy() < cfg.MinHeight {
		target := upscaleHeight
		if cfg.MinHeight > target {
			target = cfg.MinHeight
		}
		gray = imaging.Resize(gray, 0, target, imaging.Lanczos)
	}

	switch {
	case cfg.Adaptive:
		return dilate(adaptiveThreshold(gray, 15, 7), 1)
	case cfg.Threshold > 0:
		return binarize(gray, cfg.Threshold)
	}
	return gray
}

func luma(img image.Image, x, y int) int {
	r, g, b, _ := img.At(x, y).RGBA()
	return int((r + g + b) / 3 >> 8)
}

// binarize maps every pixel at or below threshold to black, the rest to white.
func binarize(img image.Image, threshold uint8) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := white
			if luma(img, x, y) <= int(threshold) {
				c = black
			}
			out.SetNRGBA(x-b.Min.X, y-b.Min.Y, c)
		}
	}
	return out
}

// adaptiveThreshold compares each pixel with the mean of its window (minus
// bias), which copes with uneven lighting across a crumpled receipt.
func adaptiveThreshold(img image.Image, window, bias int) *image.NRGBA {
	if window < 3 {
		window = 3
	}
	if window%2 == 0 {
		window++
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := imaging.New(w, h, white)
	if w == 0 || h == 0 {
		return out
	}

	// summed-area table of luma
	sums := make([]int, w*h)
	for y := 0; y < h; y++ {
		row := 0
		for x := 0; x < w; x++ {
			row += luma(img, b.Min.X+x, b.Min.Y+y)
			sums[y*w+x] = row
			if y > 0 {
				sums[y*w+x] += sums[(y-1)*w+x]
			}
		}
	}

	half := window / 2
	for y := 0; y < h; y++ {
		y0, y1 := clamp(y-half, 0, h-1), clamp(y+half, 0, h-1)
		for x := 0; x < w; x++ {
			x0, x1 := clamp(x-half, 0, w-1), clamp(x+half, 0, w-1)
			sum := sums[y1*w+x1] - sums[y0*w+x1] - sums[y1*w+x0] + sums[y0*w+x0]
			mean := sum / ((x1 - x0 + 1) * (y1 - y0 + 1))
			th := mean - bias
			if th < 0 {
				th = 0
			}
			if luma(img, b.Min.X+x, b.Min.Y+y) < th {
				out.SetNRGBA(x, y, black)
			}
		}
	}
	return out
}

// dilate thickens black strokes using a 4-neighbourhood, radius times.
func dilate(img *image.NRGBA, radius int) *image.NRGBA {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	cur := img
	for r := 0; r < radius; r++ {
		next := imaging.New(w, h, white)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				for _, d := range [][2]int{{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
					nx, ny := x+d[0], y+d[1]
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					if cur.NRGBAAt(nx, ny).R == 0 {
						next.SetNRGBA(x, y, black)
						break
					}
				}
			}
		}
		cur = next
	}
	return cur
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
