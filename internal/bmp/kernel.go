package bmp

import (
	"fmt"
	"sort"
)

// Kernel - квадратная матрица весов нечётного размера.
type Kernel struct {
	size    int
	weights []float64
}

// NewKernel копирует строки rows в ядро, проверяя, что матрица квадратная
// и её сторона нечётна.
func NewKernel(rows [][]float64) (Kernel, error) {
	size := len(rows)
	if size == 0 || size%2 == 0 {
		return Kernel{}, fmt.Errorf("bmp: размер ядра должен быть нечётным, получено %d", size)
	}
	k := Kernel{size: size, weights: make([]float64, 0, size*size)}
	for i, row := range rows {
		if len(row) != size {
			return Kernel{}, fmt.Errorf("bmp: строка %d ядра имеет длину %d, ожидалось %d", i, len(row), size)
		}
		k.weights = append(k.weights, row...)
	}
	return k, nil
}

func mustKernel(rows [][]float64) Kernel {
	k, err := NewKernel(rows)
	if err != nil {
		panic(err)
	}
	return k
}

// Size возвращает сторону ядра, 0 для нулевого значения.
func (k Kernel) Size() int { return k.size }

// Radius - полуширина n для ядра размера 2n+1.
func (k Kernel) Radius() int { return k.size / 2 }

// At возвращает вес в строке row и столбце col.
func (k Kernel) At(row, col int) float64 {
	return k.weights[row*k.size+col]
}

func (k Kernel) valid() bool {
	return k.size > 0 && k.size%2 == 1 && len(k.weights) == k.size*k.size
}

// Каталог стандартных ядер 3x3.
var (
	BoxBlur = mustKernel([][]float64{
		{1.0 / 9, 1.0 / 9, 1.0 / 9},
		{1.0 / 9, 1.0 / 9, 1.0 / 9},
		{1.0 / 9, 1.0 / 9, 1.0 / 9},
	})
	GaussianBlur = mustKernel([][]float64{
		{1.0 / 16, 2.0 / 16, 1.0 / 16},
		{2.0 / 16, 4.0 / 16, 2.0 / 16},
		{1.0 / 16, 2.0 / 16, 1.0 / 16},
	})
	Sharpen = mustKernel([][]float64{
		{0, -1, 0},
		{-1, 5, -1},
		{0, -1, 0},
	})
	Outline = mustKernel([][]float64{
		{-1, -1, -1},
		{-1, 8, -1},
		{-1, -1, -1},
	})
	Emboss = mustKernel([][]float64{
		{-2, -1, 0},
		{-1, 1, 1},
		{0, 1, 2},
	})
)

var kernelsByName = map[string]Kernel{
	"box":      BoxBlur,
	"gaussian": GaussianBlur,
	"sharpen":  Sharpen,
	"outline":  Outline,
	"emboss":   Emboss,
}

// KernelByName ищет ядро в каталоге.
func KernelByName(name string) (Kernel, bool) {
	k, ok := kernelsByName[name]
	return k, ok
}

// KernelNames возвращает имена ядер каталога по алфавиту.
func KernelNames() []string {
	names := make([]string, 0, len(kernelsByName))
	for name := range kernelsByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
