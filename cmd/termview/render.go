package main

import (
	"github.com/automoto/tooth/framebuffer"
	"github.com/automoto/tooth/shared/gamemath"
	"github.com/gdamore/tcell/v2"
)

const halfBlock = '▀'

// cells is the part of tcell.Screen the renderer writes to.
type cells interface {
	Size() (int, int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// frameStep is the smallest whole downsampling step that fits a frame of
// size into a w x h cell grid, two pixel rows per cell.
func frameStep(size gamemath.Vec2, w, h int) int32 {
	if w <= 0 || h <= 0 {
		return 0
	}
	step := int32(1)
	for size.X/step > int32(w) || (size.Y+step*2-1)/(step*2) > int32(h) {
		step++
	}
	return step
}

// drawFrame paints the frame with upper half blocks: the foreground is the
// upper pixel and the background the lower one.
func drawFrame(scr cells, frame *framebuffer.Framebuffer) {
	w, h := scr.Size()
	size := frame.Size()
	step := frameStep(size, w, h)
	if step == 0 {
		return
	}
	for cy := int32(0); cy*step*2 < size.Y; cy++ {
		for cx := int32(0); cx*step < size.X; cx++ {
			top := pixelColor(frame, gamemath.V(cx*step, cy*step*2))
			bottom := pixelColor(frame, gamemath.V(cx*step, cy*step*2+step))
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			scr.SetContent(int(cx), int(cy), halfBlock, nil, style)
		}
	}
}

func pixelColor(frame *framebuffer.Framebuffer, p gamemath.Vec2) tcell.Color {
	px := frame.Pixel(p)
	if px == nil {
		return tcell.ColorBlack
	}
	r, g, b, _ := framebuffer.Unpack(*px)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
