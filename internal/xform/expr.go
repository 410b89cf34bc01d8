package xform

import (
	"fmt"
	"math"
	"strings"

	"github.com/Raimguzhinov/bmpxform/internal/bmp"
	"github.com/knetic/govaluate"
)

// exprFunctions доступны в выражениях каналов.
func exprFunctions() map[string]govaluate.ExpressionFunction {
	return map[string]govaluate.ExpressionFunction{
		"min": func(args ...interface{}) (interface{}, error) {
			v, err := numbers("min", 2, args)
			if err != nil {
				return nil, err
			}
			return math.Min(v[0], v[1]), nil
		},
		"max": func(args ...interface{}) (interface{}, error) {
			v, err := numbers("max", 2, args)
			if err != nil {
				return nil, err
			}
			return math.Max(v[0], v[1]), nil
		},
		"floor": func(args ...interface{}) (interface{}, error) {
			v, err := numbers("floor", 1, args)
			if err != nil {
				return nil, err
			}
			return math.Floor(v[0]), nil
		},
		"clamp": func(args ...interface{}) (interface{}, error) {
			v, err := numbers("clamp", 3, args)
			if err != nil {
				return nil, err
			}
			return math.Min(math.Max(v[0], v[1]), v[2]), nil
		},
	}
}

// govaluate передаёт числа как float64
func numbers(name string, n int, args []interface{}) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s ожидает %d аргумент(а), получено %d", name, n, len(args))
	}
	out := make([]float64, n)
	for i, a := range args {
		f, ok := a.(float64)
		if !ok {
			return nil, fmt.Errorf("%s: аргумент %d не число", name, i+1)
		}
		out[i] = f
	}
	return out, nil
}

type channelExpr struct {
	expr *govaluate.EvaluableExpression // nil - канал не меняется
}

func compileChannel(channel, src string) (channelExpr, error) {
	if strings.TrimSpace(src) == "" {
		return channelExpr{}, nil
	}
	e, err := govaluate.NewEvaluableExpressionWithFunctions(src, exprFunctions())
	if err != nil {
		return channelExpr{}, fmt.Errorf("канал %s: %q: %w", channel, src, err)
	}
	for _, v := range e.Vars() {
		if _, ok := channelParams[v]; !ok {
			return channelExpr{}, fmt.Errorf("канал %s: %q: неизвестная переменная %q, доступны r, g, b", channel, src, v)
		}
	}
	// Пробный расчёт ловит ошибки, которые видны только при вычислении (число аргументов функций)
	if _, err := e.Evaluate(params(bmp.ColorRGB{})); err != nil {
		return channelExpr{}, fmt.Errorf("канал %s: %q: %w", channel, src, err)
	}
	return channelExpr{expr: e}, nil
}

var channelParams = map[string]struct{}{"r": {}, "g": {}, "b": {}}

func params(c bmp.ColorRGB) map[string]interface{} {
	return map[string]interface{}{
		"r": float64(c.R),
		"g": float64(c.G),
		"b": float64(c.B),
	}
}

// eval оставляет канал прежним, если результат не число (например, bool).
func (c channelExpr) eval(p map[string]interface{}, old byte) byte {
	if c.expr == nil {
		return old
	}
	res, err := c.expr.Evaluate(p)
	if err != nil {
		return old
	}
	f, ok := res.(float64)
	if !ok || math.IsNaN(f) {
		return old
	}
	return byte(math.Min(math.Max(math.Floor(f), 0), 255))
}

// NewExpression собирает преобразование из выражений над r, g, b (0..255).
// Результат каждого канала округляется вниз и ограничивается диапазоном 0..255.
func NewExpression(code, name, red, green, blue string) (Transform, error) {
	var chans [3]channelExpr
	for i, src := range []string{red, green, blue} {
		c, err := compileChannel([]string{"red", "green", "blue"}[i], src)
		if err != nil {
			return Transform{}, fmt.Errorf("преобразование %q: %w", code, err)
		}
		chans[i] = c
	}
	fn := func(c bmp.ColorRGB) bmp.ColorRGB {
		p := params(c)
		return bmp.ColorRGB{
			R: chans[0].eval(p, c.R),
			G: chans[1].eval(p, c.G),
			B: chans[2].eval(p, c.B),
		}
	}
	return Transform{Code: code, Name: name, Func: fn}, nil
}
