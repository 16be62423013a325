package main

import (
	"image"
	"log"

	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/draw"

	"github.com/Raimguzhinov/bmptool/internal/bmp"
)

// showPreview открывает два окна: исходное и обработанное изображения.
func showPreview(original, converted bmp.Image) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}
	defer sdl.Quit()

	winOrig, rendOrig, texOrig, err := createWindowAndTexture("Исходное", toRGBA(original), 100, 100)
	if err != nil {
		return err
	}
	defer winOrig.Destroy()
	defer rendOrig.Destroy()
	defer texOrig.Destroy()

	winConv, rendConv, texConv, err := createWindowAndTexture("Результат", toRGBA(converted), 300, 150)
	if err != nil {
		return err
	}
	defer winConv.Destroy()
	defer rendConv.Destroy()
	defer texConv.Destroy()

	showLoop(winOrig, rendOrig, texOrig, winConv, rendConv, texConv)
	return nil
}

// toRGBA приводит изображение любого кодека к image.RGBA для текстуры.
func toRGBA(img bmp.Image) *image.RGBA {
	var src image.Image
	switch m := img.(type) {
	case *bmp.ColorImage:
		return m.ToImage()
	case *bmp.GrayImage:
		src = m.ToImage()
	default:
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	dst := image.NewRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}

func showLoop(winOrig *sdl.Window, rendOrig *sdl.Renderer, texOrig *sdl.Texture,
	winConv *sdl.Window, rendConv *sdl.Renderer, texConv *sdl.Texture,
) {
	quitCh := make(chan struct{})
	waitClose(quitCh, func(windowId uint32) {
		if origId, _ := winOrig.GetID(); windowId == origId {
			log.Println("Окно с исходным изображением закрыто")
		}
		if convId, _ := winConv.GetID(); windowId == convId {
			log.Println("Окно с результатом закрыто")
		}
	})

	for {
		select {
		case <-quitCh:
			log.Println("Завершение SDL-цикла")
			return
		default:
			renderWindow(rendOrig, texOrig)
			renderWindow(rendConv, texConv)
			sdl.Delay(16) // ~60 FPS
		}
	}
}

func renderWindow(rend *sdl.Renderer, tex *sdl.Texture) {
	if rend == nil || tex == nil {
		return
	}
	rend.SetDrawColor(0, 0, 0, 255)
	rend.Clear()
	rend.Copy(tex, nil, nil)
	rend.Present()
}

func createWindowAndTexture(title string, img *image.RGBA, x, y int) (*sdl.Window, *sdl.Renderer, *sdl.Texture, error) {
	w, h := img.Rect.Dx(), img.Rect.Dy()

	win, err := sdl.CreateWindow(title, int32(x), int32(y), int32(w), int32(h), sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, nil, nil, err
	}
	rend, err := sdl.CreateRenderer(win, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		win.Destroy()
		return nil, nil, nil, err
	}
	tex, err := rend.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, int32(w), int32(h))
	if err != nil {
		rend.Destroy()
		win.Destroy()
		return nil, nil, nil, err
	}

	pixels, pitch, err := tex.Lock(nil)
	if err != nil {
		tex.Destroy()
		rend.Destroy()
		win.Destroy()
		return nil, nil, nil, err
	}
	for row := 0; row < h; row++ {
		src := img.Pix[row*img.Stride : row*img.Stride+w*4]
		copy(pixels[row*pitch:row*pitch+w*4], src)
	}
	tex.Unlock()
	return win, rend, tex, nil
}

// waitClose опрашивает события SDL и закрывает quitCh при выходе или
// закрытии любого окна.
func waitClose(quitCh chan struct{}, closeWindowCb func(windowId uint32)) {
	go func() {
		for {
			select {
			case <-quitCh:
				return
			default:
				ev := sdl.PollEvent()
				if ev == nil {
					sdl.Delay(10)
					continue
				}
				switch e := ev.(type) {
				case *sdl.QuitEvent:
					close(quitCh)
					return
				case *sdl.WindowEvent:
					if e.Event == sdl.WINDOWEVENT_CLOSE {
						closeWindowCb(e.WindowID)
						close(quitCh)
						return
					}
				}
			}
		}
	}()
}
