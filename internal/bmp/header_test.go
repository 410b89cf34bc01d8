package bmp

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestParse24Bit(t *testing.T) {
	data := make([]byte, 12) // 3x1, строка с выравниванием
	buf := buildBMP(t, 3, 1, 24, nil, data)

	fh, ih, err := Parse(buf)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if string(fh.Type[:]) != "BM" {
		t.Errorf("Type = %q", fh.Type)
	}
	if fh.FileSize != uint32(len(buf)) {
		t.Errorf("FileSize = %d, want %d", fh.FileSize, len(buf))
	}
	if fh.DataOffset != testHeaderSize {
		t.Errorf("DataOffset = %d, want %d", fh.DataOffset, testHeaderSize)
	}
	want := InfoHeader{
		HeaderSize:   40,
		Width:        3,
		Height:       1,
		BitsPerPixel: 24,
		PaletteStart: 54,
	}
	if ih != want {
		t.Errorf("InfoHeader = %+v, want %+v", ih, want)
	}
	if ih.Paletted() {
		t.Errorf("24-bit image reported as paletted")
	}
	if got := ih.Stride(); got != 12 {
		t.Errorf("Stride = %d, want 12", got)
	}
}

func TestParsePalette(t *testing.T) {
	pal := [][4]byte{{0, 0, 255, 0}, {255, 0, 0, 0}}
	buf := buildBMP(t, 2, 2, 8, pal, make([]byte, 8))

	_, ih, err := Parse(buf)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if ih.ColorCount != 2 || ih.PaletteSize != 8 || ih.PaletteStart != 54 {
		t.Errorf("palette fields = %d/%d/%d, want 2/8/54", ih.ColorCount, ih.PaletteSize, ih.PaletteStart)
	}
	if !ih.Paletted() {
		t.Errorf("8-bit image with palette not reported as paletted")
	}
}

func TestParseErrors(t *testing.T) {
	valid := func() []byte { return buildBMP(t, 3, 1, 24, nil, make([]byte, 12)) }
	withSize := func(buf []byte) []byte {
		binary.LittleEndian.PutUint32(buf[2:], uint32(len(buf)))
		return buf
	}

	for _, tc := range []struct {
		name string
		buf  []byte
		want error
	}{
		{name: "empty", buf: nil, want: ErrHeader},
		{name: "ten_bytes", buf: valid()[:10], want: ErrHeader},
		{name: "no_data_offset", buf: withSize(valid()[:12]), want: ErrHeader},
		{
			name: "size_mismatch",
			buf: func() []byte {
				buf := valid()
				binary.LittleEndian.PutUint32(buf[2:], uint32(len(buf)+1))
				return buf
			}(),
			want: ErrSizeMismatch,
		},
		{name: "truncated", buf: valid()[:40], want: ErrSizeMismatch},
		{name: "no_width", buf: withSize(valid()[:20]), want: ErrHeader},
		{
			name: "header_size_overflow",
			buf: func() []byte {
				buf := valid()
				binary.LittleEndian.PutUint32(buf[14:], 1000)
				return buf
			}(),
			want: ErrMetadata,
		},
		{
			name: "no_color_count",
			buf: func() []byte {
				buf := withSize(valid()[:40])
				binary.LittleEndian.PutUint32(buf[14:], 12)
				return buf
			}(),
			want: ErrHeader,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse(tc.buf)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestParseUnsupportedType(t *testing.T) {
	buf := buildBMP(t, 3, 1, 24, nil, make([]byte, 12))
	buf[1] = 'A'

	_, _, err := Parse(buf)
	var ute *UnsupportedTypeError
	if !errors.As(err, &ute) {
		t.Fatalf("err = %v, want UnsupportedTypeError", err)
	}
	if ute.Tag != "BA" {
		t.Fatalf("Tag = %q, want BA", ute.Tag)
	}
}

func TestCorruptErrorNamed(t *testing.T) {
	err := ErrPalette.Named("cat.bmp")
	if got, want := err.Error(), "cat.bmp palette data is corrupt or truncated"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrPalette) || errors.Is(err, ErrHeader) {
		t.Fatalf("errors.Is does not match on kind")
	}
}
