package bmp

import (
	"slices"
	"testing"
)

func TestNegativeSelfInverse(t *testing.T) {
	g := randomGray(t, 9, 7, 1)
	orig := cloneGray(g)
	g.Negative()
	if g.Pix[0] != 255-orig.Pix[0] {
		t.Errorf("Negative(%d) = %d", orig.Pix[0], g.Pix[0])
	}
	g.Negative()
	if !slices.Equal(g.Pix, orig.Pix) {
		t.Error("gray: negative twice is not the identity")
	}

	c := randomColor(t, 9, 7, 2)
	corig := cloneColor(c)
	c.Negative()
	c.Negative()
	if !slices.Equal(c.Pix, corig.Pix) {
		t.Error("color: negative twice is not the identity")
	}
}

func TestBrightnessClamp(t *testing.T) {
	tests := []struct {
		v     uint8
		delta int
		want  uint8
	}{
		{100, 50, 150},
		{100, -50, 50},
		{250, 10, 255},
		{5, -10, 0},
		{0, 255, 255},
		{255, -255, 0},
		{128, 1 << 62, 255},
		{128, -1 << 62, 0},
	}
	for _, tt := range tests {
		g, _ := NewGray(1, 1)
		g.Pix[0] = tt.v
		g.Brightness(tt.delta)
		if g.Pix[0] != tt.want {
			t.Errorf("gray Brightness(%d) on %d = %d, want %d", tt.delta, tt.v, g.Pix[0], tt.want)
		}

		c, _ := NewColor(1, 1)
		c.Pix[0] = Pixel{B: tt.v, G: tt.v, R: tt.v}
		c.Brightness(tt.delta)
		if want := (Pixel{B: tt.want, G: tt.want, R: tt.want}); c.Pix[0] != want {
			t.Errorf("color Brightness(%d) on %d = %v, want %v", tt.delta, tt.v, c.Pix[0], want)
		}
	}
}

func TestBrightnessComposition(t *testing.T) {
	pairs := [][2]int{{10, 20}, {-30, 15}, {200, -100}, {-250, 250}, {60, 60}}
	for _, p := range pairs {
		d1, d2 := p[0], p[1]
		twoStep := randomGray(t, 16, 16, int64(d1*1000+d2))
		oneStep := cloneGray(twoStep)
		orig := cloneGray(twoStep)

		twoStep.Brightness(d1)
		twoStep.Brightness(d2)
		oneStep.Brightness(d1 + d2)

		for i, v := range orig.Pix {
			first := int(v) + d1
			simulated := int(clampInt(int(clampInt(first)) + d2))
			if int(twoStep.Pix[i]) != simulated {
				t.Fatalf("d1=%d d2=%d v=%d: got %d, simulated %d", d1, d2, v, twoStep.Pix[i], simulated)
			}
			second := first + d2
			if first >= 0 && first <= 255 && second >= 0 && second <= 255 && twoStep.Pix[i] != oneStep.Pix[i] {
				t.Fatalf("d1=%d d2=%d v=%d: unclamped composition %d != %d", d1, d2, v, twoStep.Pix[i], oneStep.Pix[i])
			}
		}
	}
}

func TestThreshold(t *testing.T) {
	g, _ := NewGray(5, 1)
	copy(g.Pix, []uint8{0, 127, 128, 129, 255})
	g.Threshold(128)
	if want := []uint8{0, 0, 255, 255, 255}; !slices.Equal(g.Pix, want) {
		t.Errorf("Threshold(128) = %v, want %v", g.Pix, want)
	}

	r := randomGray(t, 12, 12, 5)
	r.Threshold(77)
	once := cloneGray(r)
	r.Threshold(77)
	if !slices.Equal(r.Pix, once.Pix) {
		t.Error("threshold is not idempotent")
	}
}

func TestGrayscaleTruncates(t *testing.T) {
	c, _ := NewColor(3, 1)
	c.Pix[0] = Pixel{R: 1, G: 1, B: 0}
	c.Pix[1] = Pixel{R: 255, G: 255, B: 254}
	c.Pix[2] = Pixel{R: 10, G: 20, B: 30}
	c.Grayscale()
	want := []Pixel{{0, 0, 0}, {254, 254, 254}, {20, 20, 20}}
	if !slices.Equal(c.Pix, want) {
		t.Errorf("Grayscale = %v, want %v", c.Pix, want)
	}
}

func TestBlackToWhite(t *testing.T) {
	c, _ := NewColor(4, 4)
	c.Grayscale()
	c.Negative()
	for i, p := range c.Pix {
		if p != (Pixel{B: 255, G: 255, R: 255}) {
			t.Fatalf("pixel %d = %v, want white", i, p)
		}
	}
}

func TestTransformsOnNilImage(t *testing.T) {
	var g *GrayImage
	var c *ColorImage
	g.Negative()
	g.Brightness(10)
	g.Threshold(3)
	g.ApplyKernel(BoxBlur)
	g.Equalize()
	g.Free()
	c.Negative()
	c.Brightness(10)
	c.Grayscale()
	c.ApplyKernel(Sharpen)
	c.Equalize()
	c.Free()
}
