package bmp

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestDetectDepthAndLoad(t *testing.T) {
	dir := t.TempDir()
	gray := randomGray(t, 4, 3, 1)
	grayPath := filepath.Join(dir, "g.bmp")
	if err := gray.Save(grayPath); err != nil {
		t.Fatal(err)
	}
	col := randomColor(t, 4, 3, 2)
	colPath := filepath.Join(dir, "c.bmp")
	if err := col.Save(colPath); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path  string
		depth Depth
	}{
		{grayPath, Depth8},
		{colPath, Depth24},
	}
	for _, tt := range tests {
		d, err := DetectDepth(tt.path)
		if err != nil || d != tt.depth {
			t.Errorf("DetectDepth(%s) = %v, %v; want %v", filepath.Base(tt.path), d, err, tt.depth)
		}
		img, err := Load(tt.path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if img.Info().ColorDepth != int(tt.depth) {
			t.Errorf("Load(%s) depth = %d", filepath.Base(tt.path), img.Info().ColorDepth)
		}
	}

	img, _ := Load(grayPath)
	if _, ok := img.(*GrayImage); !ok {
		t.Errorf("Load(gray) = %T", img)
	}
	img, _ = Load(colPath)
	if _, ok := img.(*ColorImage); !ok {
		t.Errorf("Load(color) = %T", img)
	}
}

func TestDetectDepthUnsupported(t *testing.T) {
	h := newHeader(1, 1, 32)
	hdr := h.Bytes()
	path := writeTemp(t, "argb.bmp", append(hdr[:], 0, 0, 0, 0))

	d, err := DetectDepth(path)
	var fe FormatError
	if d != DepthUnsupported || !errors.As(err, &fe) {
		t.Errorf("DetectDepth = %v, %v; want unsupported FormatError", d, err)
	}
	img, err := Load(path)
	if img != nil || err == nil {
		t.Errorf("Load = %v, %v; want nil, error", img, err)
	}

	d, err = DetectDepth(writeTemp(t, "tiny.bmp", []byte{'B', 'M', 0}))
	if d != DepthUnsupported || !errors.As(err, &fe) {
		t.Errorf("DetectDepth(short) = %v, %v", d, err)
	}

	_, err = DetectDepth(filepath.Join(t.TempDir(), "missing.bmp"))
	var ioe *IOError
	if !errors.As(err, &ioe) {
		t.Errorf("DetectDepth(missing) err = %v, want *IOError", err)
	}
}

func TestLoadReturnsNilInterfaceOnError(t *testing.T) {
	h := newHeader(2, 2, 24)
	hdr := h.Bytes()
	img, err := Load(writeTemp(t, "trunc.bmp", hdr[:]))
	if err == nil {
		t.Fatal("want error for a file without pixel data")
	}
	if img != nil {
		t.Errorf("Load returned non-nil %T with an error", img)
	}
}

func TestToImage(t *testing.T) {
	g, _ := NewGray(2, 1)
	g.Pix[0], g.Pix[1] = 3, 250
	pm := g.ToImage()
	if r, _, _, _ := pm.At(1, 0).RGBA(); r>>8 != 250 {
		t.Errorf("gray At(1,0) red = %d, want 250", r>>8)
	}

	c, _ := NewColor(1, 1)
	c.Pix[0] = Pixel{B: 1, G: 2, R: 3}
	rgba := c.ToImage()
	if got := rgba.RGBAAt(0, 0); got.R != 3 || got.G != 2 || got.B != 1 || got.A != 255 {
		t.Errorf("color RGBAAt = %v", got)
	}

	var empty *GrayImage
	if b := empty.ToImage().Bounds(); !b.Empty() {
		t.Errorf("nil image bounds = %v", b)
	}
}

func TestDepthString(t *testing.T) {
	if Depth8.String() == Depth24.String() || DepthUnsupported.String() == "" {
		t.Error("depth names collide")
	}
}
