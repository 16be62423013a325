package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Raimguzhinov/bmptool/internal/bmp"
)

const defaultThreshold = 128

// Filter - один шаг цепочки обработки.
type Filter interface {
	Apply(bmp.Image) error
}

type op struct {
	name   string
	arg    int
	hasArg bool
}

// parseOp разбирает запись вида "имя" или "имя=число".
func parseOp(s string) (op, error) {
	name, value, hasArg := strings.Cut(strings.TrimSpace(s), "=")
	o := op{name: strings.ToLower(name), hasArg: hasArg}
	switch o.name {
	case "brightness":
		if !hasArg {
			return op{}, fmt.Errorf("для brightness нужно значение: brightness=N")
		}
	case "threshold":
		if !hasArg {
			o.arg = defaultThreshold
		}
	case "negative", "gray", "equalize":
		if hasArg {
			return op{}, fmt.Errorf("фильтр %s не принимает значение", o.name)
		}
	default:
		if _, ok := bmp.KernelByName(o.name); !ok {
			return op{}, fmt.Errorf("неизвестный фильтр %q", o.name)
		}
		if hasArg {
			return op{}, fmt.Errorf("фильтр %s не принимает значение", o.name)
		}
	}
	if hasArg {
		n, err := strconv.Atoi(value)
		if err != nil {
			return op{}, fmt.Errorf("фильтр %s: %w", o.name, err)
		}
		o.arg = n
	}
	return o, nil
}

func parseOps(specs []string) ([]Filter, error) {
	filters := make([]Filter, 0, len(specs))
	for _, s := range specs {
		o, err := parseOp(s)
		if err != nil {
			return nil, err
		}
		filters = append(filters, o)
	}
	return filters, nil
}

// Apply применяет фильтр к изображению.
func (o op) Apply(img bmp.Image) error {
	switch o.name {
	case "negative":
		img.Negative()
	case "brightness":
		img.Brightness(o.arg)
	case "equalize":
		img.Equalize()
	case "threshold":
		g, ok := img.(*bmp.GrayImage)
		if !ok {
			return fmt.Errorf("threshold применим только к 8-битным изображениям")
		}
		g.Threshold(o.arg)
	case "gray":
		c, ok := img.(*bmp.ColorImage)
		if !ok {
			return fmt.Errorf("gray применим только к 24-битным изображениям")
		}
		c.Grayscale()
	default:
		k, ok := bmp.KernelByName(o.name)
		if !ok {
			return fmt.Errorf("неизвестный фильтр %q", o.name)
		}
		img.ApplyKernel(k)
	}
	return nil
}

func (o op) String() string {
	if o.hasArg || o.name == "threshold" {
		return fmt.Sprintf("%s=%d", o.name, o.arg)
	}
	return o.name
}
