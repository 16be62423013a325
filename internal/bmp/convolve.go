package bmp

import "math"

// clampRound округляет до ближайшего целого и ограничивает [0, 255].
func clampRound(v float64) uint8 {
	if v >= 255 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return uint8(math.Round(v))
}

// ApplyKernel сворачивает изображение с ядром k. Все результаты
// вычисляются по копии исходных отсчётов. Пиксели ближе Radius() к краю
// не изменяются.
func (img *GrayImage) ApplyKernel(k Kernel) {
	if img.empty() || !k.valid() {
		return
	}
	n := k.Radius()
	w, h := img.Width, img.Height
	src := make([]uint8, w*h)
	copy(src, img.Pix)

	for y := n; y < h-n; y++ {
		for x := n; x < w-n; x++ {
			var sum float64
			for ky := -n; ky <= n; ky++ {
				row := src[(y+ky)*w:]
				for kx := -n; kx <= n; kx++ {
					sum += k.At(ky+n, kx+n) * float64(row[x+kx])
				}
			}
			img.Pix[y*w+x] = clampRound(sum)
		}
	}
}

// ApplyKernel сворачивает каждый канал независимо, по тем же правилам,
// что и GrayImage.ApplyKernel.
func (img *ColorImage) ApplyKernel(k Kernel) {
	if img.empty() || !k.valid() {
		return
	}
	n := k.Radius()
	w, h := img.Width, img.Height
	src := make([]Pixel, w*h)
	copy(src, img.Pix)

	for y := n; y < h-n; y++ {
		for x := n; x < w-n; x++ {
			var sb, sg, sr float64
			for ky := -n; ky <= n; ky++ {
				row := src[(y+ky)*w:]
				for kx := -n; kx <= n; kx++ {
					wt := k.At(ky+n, kx+n)
					p := row[x+kx]
					sb += wt * float64(p.B)
					sg += wt * float64(p.G)
					sr += wt * float64(p.R)
				}
			}
			img.Pix[y*w+x] = Pixel{B: clampRound(sb), G: clampRound(sg), R: clampRound(sr)}
		}
	}
}

// Фильтры каталога.

func (img *GrayImage) BoxBlur()      { img.ApplyKernel(BoxBlur) }
func (img *GrayImage) GaussianBlur() { img.ApplyKernel(GaussianBlur) }
func (img *GrayImage) Sharpen()      { img.ApplyKernel(Sharpen) }
func (img *GrayImage) Outline()      { img.ApplyKernel(Outline) }
func (img *GrayImage) Emboss()       { img.ApplyKernel(Emboss) }

func (img *ColorImage) BoxBlur()      { img.ApplyKernel(BoxBlur) }
func (img *ColorImage) GaussianBlur() { img.ApplyKernel(GaussianBlur) }
func (img *ColorImage) Sharpen()      { img.ApplyKernel(Sharpen) }
func (img *ColorImage) Outline()      { img.ApplyKernel(Outline) }
func (img *ColorImage) Emboss()       { img.ApplyKernel(Emboss) }
