package bmp

import "encoding/binary"

// Смещения полей заголовков BMP. Именно смещения являются контрактом
// формата, поэтому поля читаются и пишутся по одному.
const (
	offMagic           = 0x00
	offFileSize        = 0x02
	offReserved1       = 0x06
	offReserved2       = 0x08
	offDataOffset      = 0x0A
	offInfoSize        = 0x0E
	offWidth           = 0x12
	offHeight          = 0x16
	offPlanes          = 0x1A
	offBitsPerPixel    = 0x1C
	offCompression     = 0x1E
	offImageSize       = 0x22
	offXResolution     = 0x26
	offYResolution     = 0x2A
	offPaletteColors   = 0x2E
	offImportantColors = 0x32
)

const (
	Magic          = 0x4D42 // "BM"
	FileHeaderSize = 14
	InfoHeaderSize = 40
	HeaderSize     = FileHeaderSize + InfoHeaderSize
	ColorTableSize = 256 * 4
	BiRGB          = 0
)

// FileHeader соответствует BITMAPFILEHEADER.
type FileHeader struct {
	Type       uint16
	FileSize   uint32
	Reserved1  uint16
	Reserved2  uint16
	DataOffset uint32
}

// InfoHeader соответствует BITMAPINFOHEADER.
type InfoHeader struct {
	Size            uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitsPerPixel    uint16
	Compression     uint32
	ImageSize       uint32
	XResolution     int32
	YResolution     int32
	PaletteColors   uint32
	ImportantColors uint32
}

// Header - оба заголовка вместе, 54 байта на диске.
type Header struct {
	File FileHeader
	Info InfoHeader
}

// ParseHeader разбирает первые HeaderSize байт файла.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, FormatError("файл короче заголовка")
	}
	le := binary.LittleEndian
	var h Header
	h.File.Type = le.Uint16(b[offMagic:])
	h.File.FileSize = le.Uint32(b[offFileSize:])
	h.File.Reserved1 = le.Uint16(b[offReserved1:])
	h.File.Reserved2 = le.Uint16(b[offReserved2:])
	h.File.DataOffset = le.Uint32(b[offDataOffset:])

	h.Info.Size = le.Uint32(b[offInfoSize:])
	h.Info.Width = int32(le.Uint32(b[offWidth:]))
	h.Info.Height = int32(le.Uint32(b[offHeight:]))
	h.Info.Planes = le.Uint16(b[offPlanes:])
	h.Info.BitsPerPixel = le.Uint16(b[offBitsPerPixel:])
	h.Info.Compression = le.Uint32(b[offCompression:])
	h.Info.ImageSize = le.Uint32(b[offImageSize:])
	h.Info.XResolution = int32(le.Uint32(b[offXResolution:]))
	h.Info.YResolution = int32(le.Uint32(b[offYResolution:]))
	h.Info.PaletteColors = le.Uint32(b[offPaletteColors:])
	h.Info.ImportantColors = le.Uint32(b[offImportantColors:])
	return h, nil
}

// Bytes сериализует заголовок в 54 байта little-endian.
func (h Header) Bytes() [HeaderSize]byte {
	var b [HeaderSize]byte
	le := binary.LittleEndian
	le.PutUint16(b[offMagic:], h.File.Type)
	le.PutUint32(b[offFileSize:], h.File.FileSize)
	le.PutUint16(b[offReserved1:], h.File.Reserved1)
	le.PutUint16(b[offReserved2:], h.File.Reserved2)
	le.PutUint32(b[offDataOffset:], h.File.DataOffset)

	le.PutUint32(b[offInfoSize:], h.Info.Size)
	le.PutUint32(b[offWidth:], uint32(h.Info.Width))
	le.PutUint32(b[offHeight:], uint32(h.Info.Height))
	le.PutUint16(b[offPlanes:], h.Info.Planes)
	le.PutUint16(b[offBitsPerPixel:], h.Info.BitsPerPixel)
	le.PutUint32(b[offCompression:], h.Info.Compression)
	le.PutUint32(b[offImageSize:], h.Info.ImageSize)
	le.PutUint32(b[offXResolution:], uint32(h.Info.XResolution))
	le.PutUint32(b[offYResolution:], uint32(h.Info.YResolution))
	le.PutUint32(b[offPaletteColors:], h.Info.PaletteColors)
	le.PutUint32(b[offImportantColors:], h.Info.ImportantColors)
	return b
}

// rowStride возвращает длину строки на диске, выровненную до 4 байт.
func rowStride(width, bitsPerPixel int) int {
	return (width*bitsPerPixel/8 + 3) &^ 3
}

// newHeader строит канонический заголовок для несжатого изображения.
func newHeader(width, height, bitsPerPixel int) Header {
	dataOffset := HeaderSize
	paletteColors := 0
	if bitsPerPixel == 8 {
		dataOffset += ColorTableSize
		paletteColors = 256
	}
	imageSize := rowStride(width, bitsPerPixel) * height
	return Header{
		File: FileHeader{
			Type:       Magic,
			FileSize:   uint32(dataOffset + imageSize),
			DataOffset: uint32(dataOffset),
		},
		Info: InfoHeader{
			Size:          InfoHeaderSize,
			Width:         int32(width),
			Height:        int32(height),
			Planes:        1,
			BitsPerPixel:  uint16(bitsPerPixel),
			Compression:   BiRGB,
			ImageSize:     uint32(imageSize),
			PaletteColors: uint32(paletteColors),
		},
	}
}
