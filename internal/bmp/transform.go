package bmp

// ColorRGB - один цвет палитры или пиксель.
type ColorRGB struct {
	R, G, B byte
}

// Смещения каналов внутри пикселя и записи палитры (порядок B, G, R).
const (
	red   = 2
	green = 1
	blue  = 0
)

func readColor(buf []byte, off uint64) ColorRGB {
	return ColorRGB{R: buf[off+red], G: buf[off+green], B: buf[off+blue]}
}

func writeColor(buf []byte, off uint64, c ColorRGB) {
	buf[off+red] = c.R
	buf[off+green] = c.G
	buf[off+blue] = c.B
}

// Apply перекрашивает буфер на месте функцией fn. Размер буфера не меняется.
// Все проверки выполняются до первой записи: при ошибке буфер остаётся прежним.
func Apply(buf []byte, fh FileHeader, ih InfoHeader, fn func(ColorRGB) ColorRGB) error {
	if ih.Paletted() {
		return applyPalette(buf, fh, ih, fn)
	}
	return applyPixels(buf, fh, ih, fn)
}

func applyPalette(buf []byte, fh FileHeader, ih InfoHeader, fn func(ColorRGB) ColorRGB) error {
	size := uint64(len(buf))
	start, end := uint64(ih.PaletteStart), uint64(fh.DataOffset)
	if start > size || end > size {
		return corrupt(KindPalette)
	}
	// Четвёртый (зарезервированный) байт записи не трогаем
	for off := start; off+PaletteEntry <= end; off += PaletteEntry {
		writeColor(buf, off, fn(readColor(buf, off)))
	}
	return nil
}

func applyPixels(buf []byte, fh FileHeader, ih InfoHeader, fn func(ColorRGB) ColorRGB) error {
	size := uint64(len(buf))
	offset := uint64(fh.DataOffset)
	if offset > size {
		return corrupt(KindPixelData)
	}
	pw := uint64(ih.PixelWidth())
	if pw < 3 {
		// красный канал по смещению +2 пришёлся бы на соседний пиксель
		return UnsupportedDepthError{Bits: ih.BitsPerPixel}
	}
	w, h := uint64(ih.Width), uint64(ih.Height)
	if w == 0 || h == 0 {
		return nil
	}
	stride := ih.Stride()
	span := w * pw // без байтов выравнивания
	if h-1 > size/stride {
		return corrupt(KindPixelData)
	}
	if last := offset + (h-1)*stride + span; last > size {
		return corrupt(KindPixelData)
	}
	for row := uint64(0); row < h; row++ {
		base := offset + row*stride
		for col := uint64(0); col < span; col += pw {
			writeColor(buf, base+col, fn(readColor(buf, base+col)))
		}
	}
	return nil
}
