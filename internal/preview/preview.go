// Package preview показывает исходное и преобразованное изображения в окнах SDL.
package preview

import (
	"log"

	"github.com/Raimguzhinov/bmpxform/internal/bmp"
	"github.com/veandco/go-sdl2/sdl"
)

type window struct {
	win  *sdl.Window
	rend *sdl.Renderer
	tex  *sdl.Texture
}

func (w *window) destroy() {
	if w.tex != nil {
		w.tex.Destroy()
		w.tex = nil
	}
	if w.rend != nil {
		w.rend.Destroy()
		w.rend = nil
	}
	if w.win != nil {
		w.win.Destroy()
		w.win = nil
	}
}

// Show блокируется, пока пользователь не закроет одно из окон.
func Show(original, converted *bmp.ImageData) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}
	defer sdl.Quit()

	orig, err := newWindow("Original BMP", original, 100, 100)
	if err != nil {
		return err
	}
	defer orig.destroy()

	conv, err := newWindow("Transformed BMP", converted, 150+original.Width, 100)
	if err != nil {
		return err
	}
	defer conv.destroy()

	showLoop(orig, conv)
	return nil
}

func showLoop(orig, conv *window) {
	for {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			switch e := ev.(type) {
			case *sdl.QuitEvent:
				log.Println("Завершение SDL-цикла")
				return
			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_CLOSE {
					log.Println("Окно закрыто, завершение SDL-цикла")
					return
				}
			}
		}
		orig.render()
		conv.render()
		sdl.Delay(16) // ~60 FPS
	}
}

func (w *window) render() {
	if w.win == nil || w.rend == nil || w.tex == nil {
		return
	}
	w.rend.SetDrawColor(0, 0, 0, 255)
	w.rend.Clear()
	w.rend.Copy(w.tex, nil, nil)
	w.rend.Present()
}

func newWindow(title string, img *bmp.ImageData, x, y int) (*window, error) {
	w, h := img.Width, img.Height

	win, err := sdl.CreateWindow(title, int32(x), int32(y), int32(w), int32(h), sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, err
	}
	res := &window{win: win}
	res.rend, err = sdl.CreateRenderer(win, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		res.destroy()
		return nil, err
	}
	res.tex, err = res.rend.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, int32(w), int32(h))
	if err != nil {
		res.destroy()
		return nil, err
	}

	pixels, pitch, err := res.tex.Lock(nil)
	if err != nil {
		res.destroy()
		return nil, err
	}
	fillRGBA(pixels, pitch, img)
	res.tex.Unlock()
	return res, nil
}

// fillRGBA копирует изображение в текстуру ABGR8888 (байты R, G, B, A).
func fillRGBA(dst []byte, pitch int, img *bmp.ImageData) {
	for y := 0; y < img.Height; y++ {
		row := dst[y*pitch:]
		for x := 0; x < img.Width; x++ {
			c := img.Pix[y*img.Width+x]
			row[x*4+0] = c.R
			row[x*4+1] = c.G
			row[x*4+2] = c.B
			row[x*4+3] = 255
		}
	}
}
