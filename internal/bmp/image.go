package bmp

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Depth - глубина цвета файла, определённая без полного декодирования.
type Depth int

const (
	DepthUnsupported Depth = 0
	Depth8           Depth = 8
	Depth24          Depth = 24
)

func (d Depth) String() string {
	switch d {
	case Depth8:
		return "8 бит"
	case Depth24:
		return "24 бита"
	}
	return "не поддерживается"
}

// DetectDepth проверяет сигнатуру и поле глубины цвета.
func DetectDepth(path string) (Depth, error) {
	f, err := os.Open(path)
	if err != nil {
		return DepthUnsupported, &IOError{Op: "открытие", Path: path, Err: err}
	}
	defer f.Close()
	return detectDepth(f)
}

func detectDepth(rs io.ReadSeeker) (Depth, error) {
	magic, _, err := ReadAt(rs, offMagic, 2, 1)
	if err != nil || binary.LittleEndian.Uint16(magic) != Magic {
		return DepthUnsupported, FormatError("не BMP")
	}
	depth, _, err := ReadAt(rs, offBitsPerPixel, 2, 1)
	if err != nil {
		return DepthUnsupported, FormatError("не удалось прочитать глубину цвета")
	}
	switch bits := binary.LittleEndian.Uint16(depth); bits {
	case 8:
		return Depth8, nil
	case 24:
		return Depth24, nil
	default:
		return DepthUnsupported, FormatError(fmt.Sprintf("глубина %d бит не поддерживается", bits))
	}
}

// Info - сводка, которую печатает PrintInfo.
type Info struct {
	Width       int
	Height      int
	ColorDepth  int
	DataSize    int
	FileSize    int
	DataOffset  int
	Compression int
}

func (i Info) Print(w io.Writer) {
	fmt.Fprintf(w, "Информация об изображении (%d бит):\n", i.ColorDepth)
	fmt.Fprintf(w, "  Ширина: %d\n", i.Width)
	fmt.Fprintf(w, "  Высота: %d\n", i.Height)
	fmt.Fprintf(w, "  Размер файла: %d байт\n", i.FileSize)
	fmt.Fprintf(w, "  Смещение данных: %d байт\n", i.DataOffset)
	fmt.Fprintf(w, "  Сжатие: %d\n", i.Compression)
	fmt.Fprintf(w, "  Размер данных: %d байт\n", i.DataSize)
}

// Image - операции, общие для 8- и 24-битных изображений.
type Image interface {
	Negative()
	Brightness(delta int)
	ApplyKernel(k Kernel)
	Equalize()
	Save(path string) error
	Info() Info
	PrintInfo(w io.Writer)
	Free()
}

var (
	_ Image = (*GrayImage)(nil)
	_ Image = (*ColorImage)(nil)
)

// Load определяет глубину файла и загружает его подходящим кодеком.
func Load(path string) (Image, error) {
	depth, err := DetectDepth(path)
	if err != nil {
		return nil, err
	}
	// Ошибку проверяем явно, чтобы не вернуть интерфейс с nil-указателем.
	if depth == Depth8 {
		img, err := LoadGray(path)
		if err != nil {
			return nil, err
		}
		return img, nil
	}
	img, err := LoadColor(path)
	if err != nil {
		return nil, err
	}
	return img, nil
}
