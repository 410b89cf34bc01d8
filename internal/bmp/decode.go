package bmp

// ImageData - изображение в RGB, строки сверху вниз.
type ImageData struct {
	Width  int
	Height int
	Pix    []ColorRGB
}

// Decode нужен только для отображения: 8-бит с палитрой, 24 и 32 бита.
func Decode(buf []byte) (*ImageData, error) {
	fh, ih, err := Parse(buf)
	if err != nil {
		return nil, err
	}
	w := int(int32(ih.Width))
	h := int(int32(ih.Height))
	topDown := false
	if h < 0 {
		topDown = true
		h = -h
	}
	if w < 0 {
		return nil, corrupt(KindMetadata)
	}

	var palette []ColorRGB
	switch ih.BitsPerPixel {
	case 8:
		if fh.DataOffset < ih.PaletteStart || fh.DataOffset > uint32(len(buf)) {
			return nil, corrupt(KindPalette)
		}
		n := int(fh.DataOffset-ih.PaletteStart) / PaletteEntry
		if n > 256 {
			n = 256
		}
		palette = make([]ColorRGB, 256)
		for i := 0; i < n; i++ {
			palette[i] = readColor(buf, uint64(ih.PaletteStart)+uint64(i*PaletteEntry))
		}
	case 24, 32:
	default:
		return nil, UnsupportedDepthError{Bits: ih.BitsPerPixel}
	}

	bpp := int(ih.BitsPerPixel)
	rowSize := (w*bpp/8 + 3) &^ 3
	if uint64(fh.DataOffset)+uint64(rowSize)*uint64(h) > uint64(len(buf)) {
		return nil, corrupt(KindPixelData)
	}
	data := buf[fh.DataOffset:]
	pix := make([]ColorRGB, w*h)
	for y := 0; y < h; y++ {
		srcY := h - 1 - y
		if topDown {
			srcY = y
		}
		off := srcY * rowSize
		for x := 0; x < w; x++ {
			if bpp == 8 {
				pix[y*w+x] = palette[data[off+x]]
			} else {
				pix[y*w+x] = readColor(data, uint64(off+x*bpp/8))
			}
		}
	}
	return &ImageData{Width: w, Height: h, Pix: pix}, nil
}
