package bmp

import (
	"errors"
	"fmt"
)

// FormatError сообщает, что файл не является поддерживаемым BMP.
type FormatError string

func (e FormatError) Error() string { return "bmp: неверный формат: " + string(e) }

// AllocationError сообщает, что размеры изображения не помещаются в буфер.
type AllocationError string

func (e AllocationError) Error() string { return "bmp: ошибка выделения памяти: " + string(e) }

// IOError оборачивает ошибку открытия, создания или записи файла.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("bmp: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ErrShortTransfer возвращается ReadAt/WriteAt, когда передано меньше элементов,
// чем запрошено. Решение о прерывании принимает вызывающий код.
var ErrShortTransfer = errors.New("bmp: неполная передача данных")

// maxPixels ограничивает width*height, чтобы испорченный заголовок
// не приводил к гигантским аллокациям.
const maxPixels = 1 << 28

func checkDims(width, height int) error {
	if width <= 0 || height <= 0 {
		return FormatError(fmt.Sprintf("недопустимые размеры %dx%d", width, height))
	}
	if int64(width)*int64(height) > maxPixels {
		return AllocationError(fmt.Sprintf("изображение %dx%d слишком велико", width, height))
	}
	return nil
}
