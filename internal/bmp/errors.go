package bmp

import "fmt"

// Kind - этап разбора, на котором файл признан повреждённым.
type Kind int

const (
	KindHeader Kind = iota + 1
	KindSizeMismatch
	KindMetadata
	KindPalette
	KindPixelData
)

func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindSizeMismatch:
		return "file size"
	case KindMetadata:
		return "metadata"
	case KindPalette:
		return "palette data"
	case KindPixelData:
		return "image data"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// CorruptError сообщает о структурной ошибке в BMP-файле.
type CorruptError struct {
	File string
	Kind Kind
}

// Эталонные значения для errors.Is.
var (
	ErrHeader       = &CorruptError{Kind: KindHeader}
	ErrSizeMismatch = &CorruptError{Kind: KindSizeMismatch}
	ErrMetadata     = &CorruptError{Kind: KindMetadata}
	ErrPalette      = &CorruptError{Kind: KindPalette}
	ErrPixelData    = &CorruptError{Kind: KindPixelData}
)

func corrupt(k Kind) error {
	return &CorruptError{Kind: k}
}

func (e *CorruptError) Error() string {
	name := e.File
	if name == "" {
		name = "bmp"
	}
	return fmt.Sprintf("%s %s is corrupt or truncated", name, e.Kind)
}

// Is сравнивает только этап, имя файла не учитывается.
func (e *CorruptError) Is(target error) bool {
	t, ok := target.(*CorruptError)
	return ok && t.Kind == e.Kind
}

// Named возвращает копию ошибки с именем файла для сообщения пользователю.
func (e *CorruptError) Named(file string) *CorruptError {
	return &CorruptError{File: file, Kind: e.Kind}
}

// UnsupportedTypeError - контейнер распознан, но формат не поддерживается.
type UnsupportedTypeError struct {
	Tag string
}

func (e *UnsupportedTypeError) Error() string {
	return "unhandled image type: " + e.Tag
}

// UnsupportedDepthError - файл корректен, но глубина цвета не обрабатывается
// (8 бит без палитры, 16 бит, меньше 8 бит без палитры).
type UnsupportedDepthError struct {
	Bits uint16
}

func (e UnsupportedDepthError) Error() string {
	return fmt.Sprintf("unsupported bit depth: %d", e.Bits)
}
