package bmp

import (
	"slices"
	"testing"
)

func TestEqualizeUniformIsIdentity(t *testing.T) {
	img, _ := NewGray(2, 2)
	copy(img.Pix, []uint8{10, 10, 10, 10})

	hist := img.Histogram()
	if hist[10] != 4 {
		t.Fatalf("hist[10] = %d, want 4", hist[10])
	}
	img.Equalize()
	if want := []uint8{10, 10, 10, 10}; !slices.Equal(img.Pix, want) {
		t.Errorf("Equalize = %v, want %v", img.Pix, want)
	}
}

func TestEqualizeRampIsIdentity(t *testing.T) {
	img, _ := NewGray(16, 16)
	for i := range img.Pix {
		img.Pix[i] = uint8(i)
	}
	orig := cloneGray(img)
	img.Equalize()
	if !slices.Equal(img.Pix, orig.Pix) {
		t.Errorf("ramp changed: %v", img.Pix)
	}
}

func TestEqualizeStretches(t *testing.T) {
	img, _ := NewGray(2, 2)
	copy(img.Pix, []uint8{50, 50, 100, 100})
	img.Equalize()
	if want := []uint8{0, 0, 255, 255}; !slices.Equal(img.Pix, want) {
		t.Errorf("Equalize = %v, want %v", img.Pix, want)
	}
}

func TestEqualizationMap(t *testing.T) {
	samples := []uint8{3, 3, 3, 7, 200}
	hist := ComputeHistogram(samples)
	cdf := hist.CDF()
	for i := 1; i < 256; i++ {
		if cdf[i] < cdf[i-1] {
			t.Fatalf("cdf not monotonic at %d", i)
		}
	}
	if cdf[2] != 0 || cdf[3] != 3 || cdf[7] != 4 || cdf[255] != 5 {
		t.Errorf("cdf = %v", cdf)
	}

	remap := EqualizationMap(&hist, len(samples))
	tests := []struct {
		in   int
		want uint8
	}{
		{0, 0},   // не встречается
		{2, 0},   // не встречается
		{3, 0},   // cdf == cdfMin
		{7, 128}, // round(1/2*255) = round(127.5)
		{100, 128},
		{200, 255},
		{255, 255},
	}
	for _, tt := range tests {
		if remap[tt.in] != tt.want {
			t.Errorf("remap[%d] = %d, want %d", tt.in, remap[tt.in], tt.want)
		}
	}
}

func TestEqualizationMapEmpty(t *testing.T) {
	var hist Histogram
	remap := EqualizationMap(&hist, 0)
	for i, v := range remap {
		if int(v) != i {
			t.Fatalf("remap[%d] = %d, want identity", i, v)
		}
	}
}

func TestColorEqualizeUniformGray(t *testing.T) {
	img, _ := NewColor(3, 3)
	for i := range img.Pix {
		img.Pix[i] = Pixel{B: 90, G: 90, R: 90}
	}
	img.Equalize()
	for i, p := range img.Pix {
		if p != (Pixel{B: 90, G: 90, R: 90}) {
			t.Fatalf("pixel %d = %v, want unchanged gray", i, p)
		}
	}
}

func TestColorEqualizeStretchesLuma(t *testing.T) {
	img, _ := NewColor(2, 1)
	img.Pix[0] = Pixel{B: 100, G: 100, R: 100}
	img.Pix[1] = Pixel{B: 110, G: 110, R: 110}
	img.Equalize()
	if img.Pix[0] != (Pixel{}) {
		t.Errorf("dark pixel = %v, want black", img.Pix[0])
	}
	if img.Pix[1] != (Pixel{B: 255, G: 255, R: 255}) {
		t.Errorf("bright pixel = %v, want white", img.Pix[1])
	}
}

func TestYUVRoundTrip(t *testing.T) {
	for _, p := range []Pixel{{0, 0, 0}, {255, 255, 255}, {10, 200, 30}, {255, 0, 128}, {17, 99, 240}} {
		got := rgbToYUV(p).rgb()
		for _, d := range []int{int(got.R) - int(p.R), int(got.G) - int(p.G), int(got.B) - int(p.B)} {
			if d < -2 || d > 2 {
				t.Errorf("yuv round trip %v -> %v", p, got)
				break
			}
		}
	}
}
