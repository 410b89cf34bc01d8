// Package xform содержит цветовые преобразования, выбираемые по однобуквенному коду.
package xform

import (
	"fmt"
	"sort"

	"github.com/Raimguzhinov/bmpxform/internal/bmp"
)

// Func - чистая функция над одним цветом.
type Func func(bmp.ColorRGB) bmp.ColorRGB

// Transform - именованное преобразование.
type Transform struct {
	Code string
	Name string
	Func Func
}

func Identity(c bmp.ColorRGB) bmp.ColorRGB {
	return c
}

func Invert(c bmp.ColorRGB) bmp.ColorRGB {
	return bmp.ColorRGB{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// Grayscale: floor(0.3r + 0.6g + 0.1b), считается в целых без ошибок округления.
func Grayscale(c bmp.ColorRGB) bmp.ColorRGB {
	gray := byte((3*int(c.R) + 6*int(c.G) + int(c.B)) / 10)
	return bmp.ColorRGB{R: gray, G: gray, B: gray}
}

// Rotate сдвигает каналы: (r, g, b) -> (g, b, r).
func Rotate(c bmp.ColorRGB) bmp.ColorRGB {
	return bmp.ColorRGB{R: c.G, G: c.B, B: c.R}
}

var builtin = []Transform{
	{Code: "N", Name: "No Transform", Func: Identity},
	{Code: "I", Name: "Invert", Func: Invert},
	{Code: "G", Name: "Grayscale", Func: Grayscale},
	{Code: "R", Name: "Rotate", Func: Rotate},
}

// Registry сопоставляет коды и преобразования.
type Registry struct {
	byCode map[string]Transform
}

// Builtin возвращает новый реестр со стандартными преобразованиями N, I, G, R.
func Builtin() *Registry {
	r := &Registry{byCode: make(map[string]Transform, len(builtin))}
	for _, t := range builtin {
		r.byCode[t.Code] = t
	}
	return r
}

// Register добавляет преобразование. Код - ровно один символ и не должен быть занят.
func (r *Registry) Register(t Transform) error {
	if len([]rune(t.Code)) != 1 {
		return fmt.Errorf("код преобразования должен быть одним символом: %q", t.Code)
	}
	if t.Func == nil {
		return fmt.Errorf("преобразование %q без функции", t.Code)
	}
	if _, ok := r.byCode[t.Code]; ok {
		return fmt.Errorf("код преобразования %q уже занят", t.Code)
	}
	r.byCode[t.Code] = t
	return nil
}

// Resolve ищет код без изменения регистра. Для неизвестного кода - пустой Transform.
func (r *Registry) Resolve(code string) (Transform, bool) {
	t, ok := r.byCode[code]
	return t, ok
}

// Codes возвращает зарегистрированные коды по порядку.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.byCode))
	for c := range r.byCode {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// Resolve ищет код среди стандартных преобразований.
func Resolve(code string) (Transform, bool) {
	return Builtin().Resolve(code)
}
