package bmp

import (
	"bytes"
	"errors"
	"testing"
)

func TestReader(t *testing.T) {
	r := NewReader([]byte{'B', 'M', 0x34, 0x12, 0x78, 0x56, 0x34, 0x12})

	chars, err := r.Chars(0, 2)
	if err != nil {
		t.Fatalf("Chars: %v", err)
	}
	if !bytes.Equal(chars, []byte("BM")) {
		t.Fatalf("Chars = %q, want BM", chars)
	}

	v16, err := r.Uint16(2)
	if err != nil || v16 != 0x1234 {
		t.Fatalf("Uint16 = %#x, %v; want 0x1234", v16, err)
	}
	v32, err := r.Uint32(4)
	if err != nil || v32 != 0x12345678 {
		t.Fatalf("Uint32 = %#x, %v; want 0x12345678", v32, err)
	}
}

func TestReaderBounds(t *testing.T) {
	r := NewReader(make([]byte, 6))

	for _, tc := range []struct {
		name string
		read func() error
	}{
		{name: "chars_past_end", read: func() error { _, err := r.Chars(4, 3); return err }},
		{name: "chars_negative", read: func() error { _, err := r.Chars(-1, 2); return err }},
		{name: "uint16_past_end", read: func() error { _, err := r.Uint16(5); return err }},
		{name: "uint32_past_end", read: func() error { _, err := r.Uint32(3); return err }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.read(); !errors.Is(err, ErrHeader) {
				t.Fatalf("err = %v, want ErrHeader", err)
			}
		})
	}
}

func TestReaderCharsCopies(t *testing.T) {
	buf := []byte("BMxx")
	chars, err := NewReader(buf).Chars(0, 2)
	if err != nil {
		t.Fatalf("Chars: %v", err)
	}
	chars[0] = 'X'
	if buf[0] != 'B' {
		t.Fatalf("Chars shares memory with the buffer")
	}
}
