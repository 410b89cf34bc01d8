// Package bmp разбирает заголовки BMP и перекрашивает пиксели прямо в буфере файла.
package bmp

const (
	FileHeaderSize = 14
	PaletteEntry   = 4
	TypeBM         = "BM"

	fileTypeOffset   = 0
	fileSizeOffset   = 2
	dataOffsetOffset = 10
	hdrSizeOffset    = 14
	widthOffset      = 18
	heightOffset     = 22
	bitCountOffset   = 28
	colorCountOffset = 46
)

// FileHeader - поля BITMAPFILEHEADER, нужные для обработки.
type FileHeader struct {
	Type       [2]byte
	FileSize   uint32 // Размер файла, заявленный в заголовке
	DataOffset uint32 // Смещение массива пикселей от начала файла
}

// InfoHeader - поля информационного заголовка BMP.
type InfoHeader struct {
	HeaderSize   uint32
	Width        uint32
	Height       uint32
	BitsPerPixel uint16
	ColorCount   uint32
	PaletteStart uint32 // 14 + HeaderSize
	PaletteSize  uint32 // 4 * ColorCount
}

// Paletted сообщает, перекрашивается ли палитра вместо пикселей.
func (ih InfoHeader) Paletted() bool {
	return ih.BitsPerPixel == 8 && ih.PaletteSize > 0
}

// PixelWidth - байт на пиксель.
func (ih InfoHeader) PixelWidth() int {
	return int(ih.BitsPerPixel / 8)
}

// Stride - длина строки в байтах с выравниванием до 4.
func (ih InfoHeader) Stride() uint64 {
	return (uint64(ih.Width)*uint64(ih.PixelWidth()) + 3) &^ 3
}

// Parse проверяет заголовки файла. Буфер не сохраняется и не изменяется.
func Parse(buf []byte) (FileHeader, InfoHeader, error) {
	fh, err := parseFileHeader(buf)
	if err != nil {
		return FileHeader{}, InfoHeader{}, err
	}
	switch tag := string(fh.Type[:]); tag {
	case TypeBM:
		ih, err := parseInfoHeader(buf)
		if err != nil {
			return FileHeader{}, InfoHeader{}, err
		}
		return fh, ih, nil
	default:
		return FileHeader{}, InfoHeader{}, &UnsupportedTypeError{Tag: tag}
	}
}

func parseFileHeader(buf []byte) (FileHeader, error) {
	var fh FileHeader
	if len(buf) <= dataOffsetOffset {
		return fh, corrupt(KindHeader)
	}
	r := NewReader(buf)
	tag, err := r.Chars(fileTypeOffset, 2)
	if err != nil {
		return fh, err
	}
	copy(fh.Type[:], tag)
	if fh.FileSize, err = r.Uint32(fileSizeOffset); err != nil {
		return fh, err
	}
	if fh.DataOffset, err = r.Uint32(dataOffsetOffset); err != nil {
		return fh, err
	}
	// Не выходим за конец файла
	if uint64(fh.FileSize) != uint64(len(buf)) {
		return fh, corrupt(KindSizeMismatch)
	}
	return fh, nil
}

func parseInfoHeader(buf []byte) (InfoHeader, error) {
	var ih InfoHeader
	if len(buf) < widthOffset+4 {
		return ih, corrupt(KindHeader)
	}
	r := NewReader(buf)
	var err error
	if ih.HeaderSize, err = r.Uint32(hdrSizeOffset); err != nil {
		return ih, err
	}
	if uint64(hdrSizeOffset)+uint64(ih.HeaderSize) > uint64(len(buf)) {
		return ih, corrupt(KindMetadata)
	}
	if ih.Width, err = r.Uint32(widthOffset); err != nil {
		return ih, err
	}
	if ih.Height, err = r.Uint32(heightOffset); err != nil {
		return ih, err
	}
	if ih.BitsPerPixel, err = r.Uint16(bitCountOffset); err != nil {
		return ih, err
	}
	if ih.ColorCount, err = r.Uint32(colorCountOffset); err != nil {
		return ih, err
	}
	ih.PaletteStart = FileHeaderSize + ih.HeaderSize
	ih.PaletteSize = PaletteEntry * ih.ColorCount
	return ih, nil
}
