package bmp

import (
	"errors"
	"fmt"
	"io"
)

// ReadAt перемещается на абсолютную позицию pos и читает n элементов
// по size байт. Возвращает буфер с целиком прочитанными элементами и их
// количество. Если прочитано меньше n элементов, ошибка оборачивает
// ErrShortTransfer, а буфер всё равно содержит то, что удалось прочитать.
func ReadAt(rs io.ReadSeeker, pos int64, size, n int) ([]byte, int, error) {
	if size <= 0 || n < 0 {
		return nil, 0, fmt.Errorf("bmp: недопустимый размер элемента %d или количество %d", size, n)
	}
	if _, err := rs.Seek(pos, io.SeekStart); err != nil {
		return nil, 0, err
	}
	buf := make([]byte, size*n)
	got, err := io.ReadFull(rs, buf)
	count := got / size
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return buf[:count*size], count, fmt.Errorf("%w: прочитано %d из %d элементов по смещению %d", ErrShortTransfer, count, n, pos)
		}
		return buf[:count*size], count, err
	}
	return buf, count, nil
}

// WriteAt перемещается на абсолютную позицию pos и записывает buf как
// len(buf)/size элементов по size байт. Возвращает количество целиком
// записанных элементов.
func WriteAt(ws io.WriteSeeker, pos int64, buf []byte, size int) (int, error) {
	if size <= 0 || len(buf)%size != 0 {
		return 0, fmt.Errorf("bmp: длина буфера %d не кратна размеру элемента %d", len(buf), size)
	}
	if _, err := ws.Seek(pos, io.SeekStart); err != nil {
		return 0, err
	}
	n := len(buf) / size
	written, err := ws.Write(buf)
	count := written / size
	if err != nil {
		return count, err
	}
	if count != n {
		return count, fmt.Errorf("%w: записано %d из %d элементов по смещению %d", ErrShortTransfer, count, n, pos)
	}
	return count, nil
}
