package bmp

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Pixel хранит каналы в порядке файла: синий, зелёный, красный.
type Pixel struct {
	B, G, R uint8
}

func (p Pixel) average() uint8 {
	return uint8((int(p.R) + int(p.G) + int(p.B)) / 3)
}

// ColorImage - 24-битное изображение.
//
// Pix - непрерывный буфер Width*Height пикселей, строки сверху вниз,
// независимо от порядка строк на диске.
type ColorImage struct {
	FileHeader FileHeader
	InfoHeader InfoHeader
	Width      int
	Height     int
	ColorDepth int
	Pix        []Pixel
}

// NewColor создаёт чёрное изображение с каноническим заголовком.
func NewColor(width, height int) (*ColorImage, error) {
	if err := checkDims(width, height); err != nil {
		return nil, err
	}
	h := newHeader(width, height, 24)
	return &ColorImage{
		FileHeader: h.File,
		InfoHeader: h.Info,
		Width:      width,
		Height:     height,
		ColorDepth: 24,
		Pix:        make([]Pixel, width*height),
	}, nil
}

// Row возвращает строку y без копирования.
func (img *ColorImage) Row(y int) []Pixel {
	return img.Pix[y*img.Width : (y+1)*img.Width]
}

func (img *ColorImage) At(x, y int) Pixel {
	return img.Pix[y*img.Width+x]
}

func (img *ColorImage) Set(x, y int, p Pixel) {
	img.Pix[y*img.Width+x] = p
}

// LoadColor читает 24-битный несжатый BMP.
func LoadColor(path string) (*ColorImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "открытие", Path: path, Err: err}
	}
	defer f.Close()
	return decodeColor(f)
}

func decodeColor(rs io.ReadSeeker) (*ColorImage, error) {
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
	if h.Info.Size < InfoHeaderSize {
		return nil, FormatError(fmt.Sprintf("неподдерживаемый размер информационного заголовка %d", h.Info.Size))
	}
	if h.Info.BitsPerPixel != 24 {
		return nil, FormatError(fmt.Sprintf("ожидалась глубина 24 бита, получено %d", h.Info.BitsPerPixel))
	}
	if h.Info.Compression != BiRGB {
		return nil, FormatError(fmt.Sprintf("сжатие %d не поддерживается", h.Info.Compression))
	}
	if h.Info.Height < 0 {
		return nil, FormatError("строки сверху вниз (отрицательная высота) не поддерживаются")
	}
	// Лишние байты расширенного заголовка пропускаются переходом на DataOffset.
	if int64(h.File.DataOffset) < int64(FileHeaderSize)+int64(h.Info.Size) {
		return nil, FormatError(fmt.Sprintf("смещение данных %d внутри заголовка", h.File.DataOffset))
	}
	width, height := int(h.Info.Width), int(h.Info.Height)
	if err := checkDims(width, height); err != nil {
		return nil, err
	}

	img := &ColorImage{
		FileHeader: h.File,
		InfoHeader: h.Info,
		Width:      width,
		Height:     height,
		ColorDepth: 24,
		Pix:        make([]Pixel, width*height),
	}
	if err := img.readPixels(rs); err != nil {
		return nil, err
	}
	return img, nil
}

func (img *ColorImage) readPixels(rs io.ReadSeeker) error {
	if _, err := rs.Seek(int64(img.FileHeader.DataOffset), io.SeekStart); err != nil {
		return err
	}
	br := bufio.NewReader(rs)
	payload := img.Width * 3
	padding := rowStride(img.Width, 24) - payload
	line := make([]byte, payload)

	// На диске строки хранятся снизу вверх.
	for y := img.Height - 1; y >= 0; y-- {
		if _, err := io.ReadFull(br, line); err != nil {
			return FormatError(fmt.Sprintf("обрезанные пиксельные данные в строке %d", y))
		}
		row := img.Row(y)
		for x := range row {
			row[x] = Pixel{B: line[x*3], G: line[x*3+1], R: line[x*3+2]}
		}
		// Выравнивание последней строки файла может отсутствовать.
		if _, err := br.Discard(padding); err != nil && y > 0 {
			return FormatError(fmt.Sprintf("обрезанное выравнивание в строке %d", y))
		}
	}
	return nil
}

// header пересчитывает производные поля (размер файла, смещение данных,
// размер растра) по текущим размерам. Разрешение берётся из загруженного
// заголовка, остальные поля нормализуются.
func (img *ColorImage) header() Header {
	h := newHeader(img.Width, img.Height, 24)
	h.Info.XResolution = img.InfoHeader.XResolution
	h.Info.YResolution = img.InfoHeader.YResolution
	return h
}

// Save записывает изображение в 24-битный BMP.
func (img *ColorImage) Save(path string) (err error) {
	if img == nil || img.Width <= 0 || img.Height <= 0 || len(img.Pix) != img.Width*img.Height {
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

func (img *ColorImage) encode(ws io.WriteSeeker) error {
	h := img.header()
	hdr := h.Bytes()
	if _, err := WriteAt(ws, 0, hdr[:], HeaderSize); err != nil {
		return err
	}
	if _, err := ws.Seek(int64(h.File.DataOffset), io.SeekStart); err != nil {
		return err
	}
	bw := bufio.NewWriter(ws)
	line := make([]byte, rowStride(img.Width, 24))
	for y := img.Height - 1; y >= 0; y-- {
		for x, p := range img.Row(y) {
			line[x*3+0] = p.B
			line[x*3+1] = p.G
			line[x*3+2] = p.R
		}
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Free освобождает пиксельный буфер.
func (img *ColorImage) Free() {
	if img == nil {
		return
	}
	img.Pix = nil
	img.Width, img.Height = 0, 0
}

func (img *ColorImage) Info() Info {
	if img == nil {
		return Info{}
	}
	return Info{
		Width:       img.Width,
		Height:      img.Height,
		ColorDepth:  img.ColorDepth,
		DataSize:    int(img.InfoHeader.ImageSize),
		FileSize:    int(img.FileHeader.FileSize),
		DataOffset:  int(img.FileHeader.DataOffset),
		Compression: int(img.InfoHeader.Compression),
	}
}

// PrintInfo печатает сводку по изображению в w.
func (img *ColorImage) PrintInfo(w io.Writer) {
	img.Info().Print(w)
}

func (img *ColorImage) empty() bool {
	return img == nil || img.Width <= 0 || img.Height <= 0 || len(img.Pix) < img.Width*img.Height
}
