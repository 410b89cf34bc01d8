package bmp

import "encoding/binary"

// Reader читает поля фиксированной ширины из буфера файла.
// BMP всегда little-endian, порядок байт хоста не учитывается.
type Reader struct {
	buf []byte
}

func NewReader(buf []byte) Reader {
	return Reader{buf: buf}
}

func (r Reader) inBounds(offset, size int) bool {
	return offset >= 0 && size >= 0 && offset <= len(r.buf)-size
}

// Chars возвращает копию length байт начиная с offset.
func (r Reader) Chars(offset, length int) ([]byte, error) {
	if !r.inBounds(offset, length) {
		return nil, corrupt(KindHeader)
	}
	out := make([]byte, length)
	copy(out, r.buf[offset:offset+length])
	return out, nil
}

func (r Reader) Uint16(offset int) (uint16, error) {
	if !r.inBounds(offset, 2) {
		return 0, corrupt(KindHeader)
	}
	return binary.LittleEndian.Uint16(r.buf[offset:]), nil
}

func (r Reader) Uint32(offset int) (uint32, error) {
	if !r.inBounds(offset, 4) {
		return 0, corrupt(KindHeader)
	}
	return binary.LittleEndian.Uint32(r.buf[offset:]), nil
}
