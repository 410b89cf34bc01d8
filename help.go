package main

const version = "bmpxform 1.0.0"

const detailedHelp = `bmpxform - цветовое преобразование BMP-файла

Использование:
  bmpxform [-t КОД | -КОД] [-o ФАЙЛ] [-c НАСТРОЙКИ] [-s] ФАЙЛ.bmp

Преобразования:
  N  No Transform  без изменений
  I  Invert        (255-r, 255-g, 255-b)
  G  Grayscale     серый = floor(0.3r + 0.6g + 0.1b)
  R  Rotate        (g, b, r)
Дополнительные преобразования задаются в файле настроек (transforms).
Код можно указать как -t I, --transform=I или коротко -I. Регистр не важен.

Алгоритм:
  1. Читается весь файл, заявленный в заголовке размер должен совпасть с фактическим.
  2. Для 8-битных изображений с палитрой перекрашивается палитра (B, G, R, резерв),
     индексы пикселей не меняются.
  3. Иначе перекрашивается каждый пиксель строки; байты выравнивания строки
     до 4 не читаются и не пишутся.
  4. Результат того же размера пишется в файл с префиксом BX (или -o ФАЙЛ).
  При любой ошибке выходной файл не создаётся.

Параметры:
  -t, --transform  код преобразования
  -o, --output     имя выходного BMP-файла
  -c, --config     файл настроек YAML (по умолчанию bmpxform.yml)
  -s, --show       показать исходное и преобразованное изображения
  -v, --version    показать версию и выйти
  -h, --help       показать эту справку
`
