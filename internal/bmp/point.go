package bmp

func clampInt(v int) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}

// addClamped прибавляет delta к v с насыщением в [0, 255].
func addClamped(v uint8, delta int) uint8 {
	// Любой |delta| > 255 даёт тот же результат, что и 255, а без
	// ограничения int(v)+delta может переполниться.
	if delta > 255 {
		delta = 255
	} else if delta < -255 {
		delta = -255
	}
	return clampInt(int(v) + delta)
}

// Negative заменяет каждый отсчёт v на 255-v.
func (img *GrayImage) Negative() {
	if img.empty() {
		return
	}
	for i, v := range img.Pix {
		img.Pix[i] = 255 - v
	}
}

// Brightness прибавляет delta к каждому отсчёту с насыщением.
func (img *GrayImage) Brightness(delta int) {
	if img.empty() {
		return
	}
	for i, v := range img.Pix {
		img.Pix[i] = addClamped(v, delta)
	}
}

// Threshold бинаризует изображение: 255 для отсчётов >= level, иначе 0.
func (img *GrayImage) Threshold(level int) {
	if img.empty() {
		return
	}
	for i, v := range img.Pix {
		if int(v) >= level {
			img.Pix[i] = 255
		} else {
			img.Pix[i] = 0
		}
	}
}

func (img *ColorImage) Negative() {
	if img.empty() {
		return
	}
	for i, p := range img.Pix {
		img.Pix[i] = Pixel{B: 255 - p.B, G: 255 - p.G, R: 255 - p.R}
	}
}

func (img *ColorImage) Brightness(delta int) {
	if img.empty() {
		return
	}
	for i, p := range img.Pix {
		img.Pix[i] = Pixel{
			B: addClamped(p.B, delta),
			G: addClamped(p.G, delta),
			R: addClamped(p.R, delta),
		}
	}
}

// Grayscale заменяет все три канала на floor((R+G+B)/3).
func (img *ColorImage) Grayscale() {
	if img.empty() {
		return
	}
	for i, p := range img.Pix {
		g := p.average()
		img.Pix[i] = Pixel{B: g, G: g, R: g}
	}
}
