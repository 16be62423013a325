package bmp

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// grayDataOffset - единственное поддерживаемое положение пиксельных данных
// 8-битного файла: заголовок и полная таблица из 256 цветов.
const grayDataOffset = HeaderSize + ColorTableSize

// GrayImage - 8-битное изображение в оттенках серого.
//
// Header и ColorTable хранятся как есть и записываются обратно без изменений.
// Pix содержит Width*Height байт без выравнивания, строки идут сверху вниз.
type GrayImage struct {
	Header     [HeaderSize]byte
	ColorTable [ColorTableSize]byte
	Pix        []uint8
	Width      int
	Height     int
	ColorDepth int
	DataSize   int
}

// NewGray создаёт чёрное изображение с каноническим заголовком и
// палитрой-градиентом серого.
func NewGray(width, height int) (*GrayImage, error) {
	if err := checkDims(width, height); err != nil {
		return nil, err
	}
	img := &GrayImage{
		Header:     newHeader(width, height, 8).Bytes(),
		Pix:        make([]uint8, width*height),
		Width:      width,
		Height:     height,
		ColorDepth: 8,
		DataSize:   width * height,
	}
	for i := 0; i < 256; i++ {
		img.ColorTable[i*4+0] = byte(i)
		img.ColorTable[i*4+1] = byte(i)
		img.ColorTable[i*4+2] = byte(i)
	}
	return img, nil
}

// GrayFromColor переводит 24-битное изображение в 8-битное, беря
// целочисленное среднее каналов, как ColorImage.Grayscale.
func GrayFromColor(src *ColorImage) (*GrayImage, error) {
	if src == nil {
		return nil, fmt.Errorf("bmp: пустое изображение")
	}
	img, err := NewGray(src.Width, src.Height)
	if err != nil {
		return nil, err
	}
	for i, p := range src.Pix {
		img.Pix[i] = p.average()
	}
	return img, nil
}

// LoadGray читает 8-битный BMP.
func LoadGray(path string) (*GrayImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "открытие", Path: path, Err: err}
	}
	defer f.Close()
	return decodeGray(f)
}

func decodeGray(rs io.ReadSeeker) (*GrayImage, error) {
	raw, _, err := ReadAt(rs, 0, HeaderSize, 1)
	if err != nil {
		return nil, FormatError("файл короче заголовка")
	}
	h, err := ParseHeader(raw)
	if err != nil {
		return nil, err
	}
	if h.File.Type != Magic {
		return nil, FormatError("не BMP")
	}
	if h.Info.BitsPerPixel != 8 {
		return nil, FormatError(fmt.Sprintf("ожидалась глубина 8 бит, получено %d", h.Info.BitsPerPixel))
	}
	if h.Info.Compression != BiRGB {
		return nil, FormatError(fmt.Sprintf("сжатие %d не поддерживается", h.Info.Compression))
	}
	if h.Info.Size != InfoHeaderSize || h.File.DataOffset != grayDataOffset {
		return nil, FormatError(fmt.Sprintf("неподдерживаемая раскладка 8-битного файла: заголовок %d, смещение данных %d",
			h.Info.Size, h.File.DataOffset))
	}
	width, height := int(h.Info.Width), int(h.Info.Height)
	if err := checkDims(width, height); err != nil {
		return nil, err
	}

	img := &GrayImage{
		Width:      width,
		Height:     height,
		ColorDepth: 8,
		DataSize:   width * height,
	}
	copy(img.Header[:], raw)

	table, _, err := ReadAt(rs, HeaderSize, ColorTableSize, 1)
	if err != nil {
		return nil, FormatError("обрезанная таблица цветов")
	}
	copy(img.ColorTable[:], table)

	stride := rowStride(width, 8)
	data, rows, err := ReadAt(rs, grayDataOffset, stride, height)
	if err != nil {
		return nil, FormatError(fmt.Sprintf("обрезанные пиксельные данные: прочитано %d из %d строк", rows, height))
	}
	img.Pix = make([]uint8, width*height)
	for y := 0; y < height; y++ {
		src := data[(height-1-y)*stride:]
		copy(img.Pix[y*width:(y+1)*width], src[:width])
	}
	return img, nil
}

// Save записывает изображение: заголовок и палитру без изменений, затем
// строки снизу вверх, дополненные нулями до 4 байт.
func (img *GrayImage) Save(path string) (err error) {
	if img == nil || len(img.Pix) != img.Width*img.Height || img.Width <= 0 {
		return fmt.Errorf("bmp: нечего сохранять в %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "создание", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "закрытие", Path: path, Err: cerr}
		}
	}()
	if err := img.encode(f); err != nil {
		return &IOError{Op: "запись", Path: path, Err: err}
	}
	return nil
}

func (img *GrayImage) encode(ws io.WriteSeeker) error {
	if _, err := WriteAt(ws, 0, img.Header[:], HeaderSize); err != nil {
		return err
	}
	if _, err := WriteAt(ws, HeaderSize, img.ColorTable[:], ColorTableSize); err != nil {
		return err
	}
	stride := rowStride(img.Width, 8)
	data := make([]byte, stride*img.Height)
	for y := 0; y < img.Height; y++ {
		dst := data[(img.Height-1-y)*stride:]
		copy(dst[:img.Width], img.Pix[y*img.Width:(y+1)*img.Width])
	}
	_, err := WriteAt(ws, grayDataOffset, data, stride)
	return err
}

// Free освобождает пиксельный буфер. После вызова все преобразования
// ничего не делают.
func (img *GrayImage) Free() {
	if img == nil {
		return
	}
	img.Pix = nil
	img.Width, img.Height, img.DataSize = 0, 0, 0
}

// Info возвращает сводку по изображению.
func (img *GrayImage) Info() Info {
	if img == nil {
		return Info{}
	}
	le := binary.LittleEndian
	return Info{
		Width:       img.Width,
		Height:      img.Height,
		ColorDepth:  img.ColorDepth,
		DataSize:    img.DataSize,
		FileSize:    int(le.Uint32(img.Header[offFileSize:])),
		DataOffset:  int(le.Uint32(img.Header[offDataOffset:])),
		Compression: int(le.Uint32(img.Header[offCompression:])),
	}
}

// PrintInfo печатает сводку по изображению в w.
func (img *GrayImage) PrintInfo(w io.Writer) {
	img.Info().Print(w)
}

func (img *GrayImage) empty() bool {
	return img == nil || img.Width <= 0 || img.Height <= 0 || len(img.Pix) < img.Width*img.Height
}
