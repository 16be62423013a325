package main

const version = "bmptool 1.0.0"

const detailedHelp = `Использование:
  bmptool [параметры] <входной.bmp>

Загружает несжатый BMP (8 бит в оттенках серого или 24 бита RGB),
применяет цепочку фильтров в порядке указания и сохраняет результат.

Параметры:
  -o, --output   имя выходного файла (по умолчанию <вход>_out.bmp)
  -f, --filter   фильтр, можно указывать несколько раз
  -i, --info     вывести сведения об изображении
  -g, --gray8    сохранить 24-битное изображение как 8-битное серое
  -s, --show     показать исходное и обработанное изображения
  -v, --version  показать версию и выйти
  -h, --help     показать эту справку

Фильтры:
  negative        v -> 255 - v для каждого канала
  brightness=N    v -> v + N с насыщением в [0, 255]
  threshold[=N]   только 8 бит: 255, если v >= N, иначе 0 (N = 128)
  gray            только 24 бита: каналы -> (R + G + B) / 3, с отбрасыванием дробной части
  box             размытие средним 3x3
  gaussian        гауссово размытие 3x3 (1 2 1 / 2 4 2 / 1 2 1, делённое на 16)
  sharpen         повышение резкости
  outline         выделение контуров
  emboss          тиснение
  equalize        выравнивание гистограммы (для 24 бит - по яркости Y в YUV)

Свёртка не изменяет пиксели ближе радиуса ядра к краю изображения.
Результат свёртки округляется к ближайшему целому и ограничивается [0, 255].

Пример:
  bmptool -f gray -f brightness=20 -f sharpen -o out.bmp photo.bmp
`
