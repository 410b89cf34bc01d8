// Package config описывает параметры запуска и необязательный YAML-файл настроек.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Raimguzhinov/bmpxform/internal/xform"
	"gopkg.in/yaml.v2"
)

const (
	DefaultPrefix = "BX"
	DefaultFile   = "bmpxform.yml"
)

// Config - параметры одного запуска. Создаётся один раз и передаётся по значению.
type Config struct {
	InputPath     string
	OutputPath    string
	TransformCode string
	Show          bool
}

// TransformDef - пользовательское преобразование из файла настроек.
type TransformDef struct {
	Code  string `yaml:"code"`
	Name  string `yaml:"name"`
	Red   string `yaml:"red,omitempty"`
	Green string `yaml:"green,omitempty"`
	Blue  string `yaml:"blue,omitempty"`
}

// File - содержимое файла настроек.
type File struct {
	Prefix     string         `yaml:"prefix,omitempty"`    // Префикс имени выходного файла
	Transform  string         `yaml:"transform,omitempty"` // Код преобразования по умолчанию
	Transforms []TransformDef `yaml:"transforms,omitempty"`
}

func Defaults() File {
	return File{Prefix: DefaultPrefix}
}

// Load читает файл настроек. Отсутствующий файл - не ошибка, возвращаются умолчания.
func Load(path string) (File, error) {
	f := Defaults()
	if path == "" {
		return f, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return f, nil
		}
		return File{}, fmt.Errorf("не удалось прочитать настройки '%s': %w", path, err)
	}
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return File{}, fmt.Errorf("не удалось разобрать настройки '%s': %w", path, err)
	}
	if f.Prefix == "" {
		f.Prefix = DefaultPrefix
	}
	f.Transform = strings.ToUpper(f.Transform)
	return f, nil
}

// Registry возвращает стандартные преобразования и преобразования из файла.
func (f File) Registry() (*xform.Registry, error) {
	reg := xform.Builtin()
	for _, d := range f.Transforms {
		t, err := xform.NewExpression(strings.ToUpper(d.Code), d.Name, d.Red, d.Green, d.Blue)
		if err != nil {
			return nil, err
		}
		if err := reg.Register(t); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// OutputPath добавляет префикс к имени файла, каталог сохраняется.
func OutputPath(input, prefix string) string {
	dir, name := filepath.Split(input)
	return filepath.Join(dir, prefix+name)
}
