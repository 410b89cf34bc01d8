package bmp

import (
	"encoding/binary"
	"testing"
)

const (
	testHeaderSize = FileHeaderSize + 40
)

// buildBMP собирает файл с BITMAPINFOHEADER, палитрой и готовыми строками пикселей.
func buildBMP(t *testing.T, w, h int, bitCount uint16, palette [][4]byte, data []byte) []byte {
	t.Helper()

	dataOffset := testHeaderSize + len(palette)*PaletteEntry
	fileSize := dataOffset + len(data)
	buf := make([]byte, fileSize)

	buf[0] = 'B'
	buf[1] = 'M'
	binary.LittleEndian.PutUint32(buf[2:], uint32(fileSize))
	binary.LittleEndian.PutUint32(buf[10:], uint32(dataOffset))

	dib := buf[FileHeaderSize:]
	binary.LittleEndian.PutUint32(dib[0:], 40)
	binary.LittleEndian.PutUint32(dib[4:], uint32(w))
	binary.LittleEndian.PutUint32(dib[8:], uint32(h))
	binary.LittleEndian.PutUint16(dib[12:], 1)
	binary.LittleEndian.PutUint16(dib[14:], bitCount)
	binary.LittleEndian.PutUint32(dib[20:], uint32(len(data)))
	binary.LittleEndian.PutUint32(dib[32:], uint32(len(palette)))

	for i, e := range palette {
		copy(buf[testHeaderSize+i*PaletteEntry:], e[:])
	}
	copy(buf[dataOffset:], data)
	return buf
}

func cloneBytes(b []byte) []byte {
	return append([]byte(nil), b...)
}

// invert и rotate повторяют xform.Invert и xform.Rotate: xform импортирует bmp, не наоборот.
func invert(c ColorRGB) ColorRGB {
	return ColorRGB{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

func rotate(c ColorRGB) ColorRGB {
	return ColorRGB{R: c.G, G: c.B, B: c.R}
}
