package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/Raimguzhinov/bmpxform/internal/bmp"
	"github.com/Raimguzhinov/bmpxform/internal/config"
	"github.com/Raimguzhinov/bmpxform/internal/preview"
	"github.com/Raimguzhinov/bmpxform/internal/xform"
)

type Options struct {
	Transform string `short:"t" long:"transform" description:"Код преобразования (N, I, G, R или из файла настроек)"`
	Output    string `short:"o" long:"output" description:"Имя выходного BMP-файла"`
	Config    string `short:"c" long:"config" default:"bmpxform.yml" description:"Файл настроек YAML"`
	Show      bool   `short:"s" long:"show" description:"Отобразить изображения после преобразования"`
	Version   bool   `short:"v" long:"version" description:"Показать версию и выйти"`
	Help      bool   `short:"h" long:"help" description:"Показать справку с описанием алгоритма"`
}

func main() {
	var opts Options

	parser := flags.NewParser(&opts, flags.IgnoreUnknown)
	args, err := parser.Parse()
	if opts.Help {
		fmt.Print(detailedHelp)
		return
	}
	if opts.Version {
		fmt.Println(version)
		return
	}
	if err != nil {
		fmt.Print(detailedHelp)
		os.Exit(1)
	}

	file, err := config.Load(opts.Config)
	if err != nil {
		log.Fatalf("Ошибка настроек: %v", err)
	}
	reg, err := file.Registry()
	if err != nil {
		log.Fatalf("Ошибка настроек: %v", err)
	}
	cfg, err := buildConfig(opts, args, file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Print(detailedHelp)
		fmt.Println(availableCodes(reg))
		os.Exit(1)
	}

	res, err := run(cfg, reg)
	if err != nil {
		var ute *UnknownTransformError
		if errors.As(err, &ute) {
			log.Fatalf("Ошибка: %v. %s", err, availableCodes(reg))
		}
		log.Fatalf("Ошибка: %v", err)
	}
	log.Printf("Преобразование %s применено", res.Transform.Name)
	log.Println("Файл успешно записан:", cfg.OutputPath)

	if cfg.Show {
		original, err := bmp.Decode(res.Original)
		if err != nil {
			log.Fatalf("Ошибка декодирования исходного BMP: %v", err)
		}
		converted, err := bmp.Decode(res.Converted)
		if err != nil {
			log.Fatalf("Ошибка декодирования результата: %v", err)
		}
		if err := preview.Show(original, converted); err != nil {
			log.Fatalf("Ошибка SDL: %v", err)
		}
	}
}

// buildConfig собирает параметры запуска. Оставшиеся аргументы вида -X
// задают код преобразования, остальные - входной файл.
func buildConfig(opts Options, args []string, file config.File) (config.Config, error) {
	var legacy string
	var inputs []string
	for _, a := range args {
		if strings.HasPrefix(a, "-") {
			if len(a) > 1 {
				legacy = a[1:2]
			}
			continue
		}
		inputs = append(inputs, a)
	}
	if len(inputs) != 1 {
		return config.Config{}, fmt.Errorf("нужен ровно один входной файл, указано: %d", len(inputs))
	}

	code := file.Transform
	if legacy != "" {
		code = legacy
	}
	if opts.Transform != "" {
		code = opts.Transform
	}
	if code == "" {
		return config.Config{}, fmt.Errorf("не указано преобразование")
	}

	cfg := config.Config{
		InputPath:     inputs[0],
		OutputPath:    opts.Output,
		TransformCode: strings.ToUpper(code),
		Show:          opts.Show,
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = config.OutputPath(cfg.InputPath, file.Prefix)
	}
	return cfg, nil
}

// availableCodes перечисляет коды реестра, включая заданные в файле настроек.
func availableCodes(reg *xform.Registry) string {
	codes := reg.Codes()
	names := make([]string, 0, len(codes))
	for _, c := range codes {
		t, _ := reg.Resolve(c)
		names = append(names, c+" ("+t.Name+")")
	}
	return "Доступные преобразования: " + strings.Join(names, ", ")
}
