package main

import (
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// maxProcessedBytes is the size budget for archived bill images.
const maxProcessedBytes = 1_000_000

// moveToProcessed moves dir/name to dir/processed/name, downscaling images
// larger than maxProcessedBytes. Undecodable files are moved as is.
func moveToProcessed(dir, name string) error {
	processedDir := filepath.Join(dir, "processed")
	if err := os.MkdirAll(processedDir, 0o755); err != nil {
		return err
	}
	src := filepath.Join(dir, name)
	dst := filepath.Join(processedDir, name)

	fi, err := os.Stat(src)
	if err != nil {
		return err
	}
	if fi.Size() <= maxProcessedBytes {
		return moveFile(src, dst)
	}

	img, err := imaging.Open(src, imaging.AutoOrientation(true))
	if err != nil {
		return moveFile(src, dst)
	}
	// encoded size scales roughly with area
	scale := math.Sqrt(float64(maxProcessedBytes) / float64(fi.Size()))
	scale = math.Max(0.1, math.Min(scale, 0.95))
	w := int(math.Max(1, math.Round(float64(img.Bounds().Dx())*scale)))
	h := int(math.Max(1, math.Round(float64(img.Bounds().Dy())*scale)))
	small := imaging.Resize(img, w, h, imaging.Lanczos)
	if err := imaging.Save(small, dst, imaging.JPEGQuality(85)); err != nil {
		return moveFile(src, dst)
	}
	if fi2, err := os.Stat(dst); err == nil && fi2.Size() > maxProcessedBytes {
		smaller := imaging.Resize(small, int(float64(w)*0.8), 0, imaging.Lanczos)
		_ = imaging.Save(smaller, dst, imaging.JPEGQuality(80))
	}
	return os.Remove(src)
}

// moveFile renames src to dst, copying across filesystems when needed.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Remove(src)
}
