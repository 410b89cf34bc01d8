package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/Raimguzhinov/bmpxform/internal/bmp"
	"github.com/Raimguzhinov/bmpxform/internal/config"
	"github.com/Raimguzhinov/bmpxform/internal/xform"
)

// UnknownTransformError - код не найден в реестре, файл не читается.
type UnknownTransformError struct {
	Code string
}

func (e *UnknownTransformError) Error() string {
	return fmt.Sprintf("неизвестное преобразование: %q", e.Code)
}

// Result - буферы до и после преобразования.
type Result struct {
	Transform xform.Transform
	Original  []byte // заполняется только при cfg.Show
	Converted []byte
}

// run выполняет этапы по порядку: выбор преобразования, чтение, разбор,
// перекраска, запись. Выходной файл пишется только после успешной перекраски.
func run(cfg config.Config, reg *xform.Registry) (*Result, error) {
	t, ok := reg.Resolve(cfg.TransformCode)
	if !ok {
		return nil, &UnknownTransformError{Code: cfg.TransformCode}
	}

	data, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("не удалось обработать '%s': %w", cfg.InputPath, err)
	}

	fh, ih, err := bmp.Parse(data)
	if err != nil {
		return nil, named(err, cfg.InputPath)
	}
	log.Printf("%s: %dx%d, %d бит, палитра %d цветов", cfg.InputPath, ih.Width, ih.Height, ih.BitsPerPixel, ih.ColorCount)

	res := &Result{Transform: t}
	if cfg.Show {
		res.Original = append([]byte(nil), data...)
	}
	if err := bmp.Apply(data, fh, ih, t.Func); err != nil {
		return nil, named(err, cfg.InputPath)
	}
	res.Converted = data

	if err := os.WriteFile(cfg.OutputPath, data, 0644); err != nil {
		return nil, fmt.Errorf("не удалось записать '%s': %w", cfg.OutputPath, err)
	}
	return res, nil
}

func named(err error, file string) error {
	var ce *bmp.CorruptError
	if errors.As(err, &ce) {
		return ce.Named(file)
	}
	return err
}
