package bmp

type yuv struct {
	y, u, v float64
}

func rgbToYUV(p Pixel) yuv {
	r, g, b := float64(p.R), float64(p.G), float64(p.B)
	return yuv{
		y: 0.299*r + 0.587*g + 0.114*b,
		u: -0.14713*r - 0.28886*g + 0.436*b,
		v: 0.615*r - 0.51499*g - 0.10001*b,
	}
}

func (c yuv) rgb() Pixel {
	return Pixel{
		R: clampRound(c.y + 1.13983*c.v),
		G: clampRound(c.y - 0.39465*c.u - 0.58060*c.v),
		B: clampRound(c.y + 2.03211*c.u),
	}
}
