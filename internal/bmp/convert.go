package bmp

import (
	"image"
	"image/color"
)

// Palette разбирает таблицу цветов (B, G, R, 0) в палитру.
func (img *GrayImage) Palette() color.Palette {
	pal := make(color.Palette, 256)
	for i := range pal {
		e := img.ColorTable[i*4:]
		pal[i] = color.RGBA{R: e[2], G: e[1], B: e[0], A: 0xff}
	}
	return pal
}

// ToImage представляет изображение как image.Paletted с его собственной палитрой.
func (img *GrayImage) ToImage() *image.Paletted {
	if img.empty() {
		return image.NewPaletted(image.Rect(0, 0, 0, 0), nil)
	}
	m := image.NewPaletted(image.Rect(0, 0, img.Width, img.Height), img.Palette())
	copy(m.Pix, img.Pix)
	return m
}

// ToImage копирует пиксели в image.RGBA.
func (img *ColorImage) ToImage() *image.RGBA {
	if img.empty() {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	m := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for i, p := range img.Pix {
		m.Pix[i*4+0] = p.R
		m.Pix[i*4+1] = p.G
		m.Pix[i*4+2] = p.B
		m.Pix[i*4+3] = 0xff
	}
	return m
}
