package bmp

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func randomGray(t *testing.T, w, h int, seed int64) *GrayImage {
	t.Helper()
	img, err := NewGray(w, h)
	if err != nil {
		t.Fatalf("NewGray(%d, %d): %v", w, h, err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := range img.Pix {
		img.Pix[i] = uint8(rng.Intn(256))
	}
	return img
}

func randomColor(t *testing.T, w, h int, seed int64) *ColorImage {
	t.Helper()
	img, err := NewColor(w, h)
	if err != nil {
		t.Fatalf("NewColor(%d, %d): %v", w, h, err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := range img.Pix {
		img.Pix[i] = Pixel{B: uint8(rng.Intn(256)), G: uint8(rng.Intn(256)), R: uint8(rng.Intn(256))}
	}
	return img
}

func cloneGray(img *GrayImage) *GrayImage {
	c := *img
	c.Pix = append([]uint8(nil), img.Pix...)
	return &c
}

func cloneColor(img *ColorImage) *ColorImage {
	c := *img
	c.Pix = append([]Pixel(nil), img.Pix...)
	return &c
}
