package bmp

import "math"

// Histogram - число отсчётов каждой интенсивности.
type Histogram [256]int

// ComputeHistogram строит гистограмму отсчётов.
func ComputeHistogram(samples []uint8) Histogram {
	var h Histogram
	for _, v := range samples {
		h[v]++
	}
	return h
}

// CDF возвращает накопленную сумму гистограммы.
func (h *Histogram) CDF() [256]int {
	var cdf [256]int
	cdf[0] = h[0]
	for i := 1; i < 256; i++ {
		cdf[i] = cdf[i-1] + h[i]
	}
	return cdf
}

// EqualizationMap строит таблицу перекодировки интенсивностей для
// выравнивания гистограммы по numPixels отсчётам:
//
//	remap[i] = round((cdf[i]-cdfMin) / (numPixels-cdfMin) * 255)
//
// где cdfMin - наименьшее ненулевое значение CDF. Отсутствующие
// интенсивности отображаются в 0. Если всё изображение одной
// интенсивности, таблица тождественная.
func EqualizationMap(h *Histogram, numPixels int) [256]uint8 {
	var remap [256]uint8
	cdf := h.CDF()

	cdfMin := 0
	for _, c := range cdf {
		if c > 0 {
			cdfMin = c
			break
		}
	}
	denom := numPixels - cdfMin
	if denom <= 0 {
		for i := range remap {
			remap[i] = uint8(i)
		}
		return remap
	}
	for i, c := range cdf {
		if c == 0 {
			continue
		}
		v := math.Round(float64(c-cdfMin) * 255 / float64(denom))
		remap[i] = clampInt(int(v))
	}
	return remap
}

// Histogram возвращает гистограмму отсчётов изображения.
func (img *GrayImage) Histogram() Histogram {
	if img.empty() {
		return Histogram{}
	}
	return ComputeHistogram(img.Pix[:img.Width*img.Height])
}

// Equalize выравнивает гистограмму изображения.
func (img *GrayImage) Equalize() {
	if img.empty() {
		return
	}
	hist := img.Histogram()
	remap := EqualizationMap(&hist, img.Width*img.Height)
	for i, v := range img.Pix {
		img.Pix[i] = remap[v]
	}
}

// Equalize выравнивает гистограмму яркости Y в пространстве YUV,
// оставляя U и V без изменений.
func (img *ColorImage) Equalize() {
	if img.empty() {
		return
	}
	n := img.Width * img.Height
	buf := make([]yuv, n)
	var hist Histogram
	for i, p := range img.Pix[:n] {
		buf[i] = rgbToYUV(p)
		hist[clampRound(buf[i].y)]++
	}
	remap := EqualizationMap(&hist, n)
	for i := range buf {
		c := buf[i]
		c.y = float64(remap[clampRound(c.y)])
		img.Pix[i] = c.rgb()
	}
}
