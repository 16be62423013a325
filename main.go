package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/Raimguzhinov/bmptool/internal/bmp"
)

type Options struct {
	Output  string   `short:"o" long:"output" description:"Имя выходного BMP-файла"`
	Filters []string `short:"f" long:"filter" description:"Фильтр из цепочки (можно повторять)"`
	Info    bool     `short:"i" long:"info" description:"Показать сведения об изображении"`
	Gray8   bool     `short:"g" long:"gray8" description:"Сохранить 24-битное изображение как 8-битное серое"`
	Show    bool     `short:"s" long:"show" description:"Отобразить изображение после обработки"`
	Version bool     `short:"v" long:"version" description:"Показать версию и выйти"`
	Help    bool     `short:"h" long:"help" description:"Показать справку с описанием фильтров"`
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
	if err != nil || len(args) == 0 {
		fmt.Print(detailedHelp)
		os.Exit(1)
	}

	inputFile := args[0]
	outputFile := opts.Output

	// Если `--output` не указан, используем `<input>_out.bmp`
	if outputFile == "" {
		outputFile = defaultOutput(inputFile)
	}

	filters, err := parseOps(opts.Filters)
	if err != nil {
		log.Fatalf("Ошибка в параметрах: %v", err)
	}

	img, err := process(inputFile, outputFile, filters, opts)
	if err != nil {
		log.Fatalf("Ошибка обработки: %v", err)
	}
	defer img.Free()
	log.Println("Файл успешно записан:", filepath.Join(".", outputFile))

	if opts.Show {
		original, err := bmp.Load(inputFile)
		if err != nil {
			log.Fatalf("Ошибка загрузки BMP: %v", err)
		}
		defer original.Free()
		if err := showPreview(original, img); err != nil {
			log.Fatalf("Ошибка SDL: %v", err)
		}
	}
}

func defaultOutput(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "_out.bmp"
}

// process загружает файл, применяет фильтры по порядку и сохраняет результат.
func process(input, output string, filters []Filter, opts Options) (bmp.Image, error) {
	img, err := bmp.Load(input)
	if err != nil {
		return nil, err
	}
	if opts.Info {
		img.PrintInfo(os.Stdout)
	}
	for _, f := range filters {
		if err := f.Apply(img); err != nil {
			img.Free()
			return nil, err
		}
		log.Println("Применён фильтр:", f)
	}
	if opts.Gray8 {
		if c, ok := img.(*bmp.ColorImage); ok {
			g, err := bmp.GrayFromColor(c)
			if err != nil {
				return nil, err
			}
			c.Free()
			img = g
		}
	}
	if err := img.Save(output); err != nil {
		img.Free()
		return nil, err
	}
	return img, nil
}
