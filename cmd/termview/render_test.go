package main

import (
	"testing"

	"github.com/automoto/tooth/framebuffer"
	"github.com/automoto/tooth/shared/gamemath"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameStep(t *testing.T) {
	full := gamemath.V(framebuffer.Width, framebuffer.Height)
	assert.Equal(t, int32(1), frameStep(full, 320, 90))
	assert.Equal(t, int32(2), frameStep(full, 160, 45))
	assert.Equal(t, int32(4), frameStep(full, 80, 24))
	assert.Equal(t, int32(0), frameStep(full, 0, 24))
}

func TestDrawFrameHalfBlocks(t *testing.T) {
	scr := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, scr.Init())
	defer scr.Fini()
	scr.SetSize(4, 2)

	frame := framebuffer.New(4, 4)
	*frame.Pixel(gamemath.V(1, 0)) = framebuffer.RGBA(0xFF, 0, 0, 0xFF)
	*frame.Pixel(gamemath.V(1, 1)) = framebuffer.RGBA(0, 0, 0xFF, 0xFF)

	drawFrame(scr, frame)

	r, _, style, _ := scr.GetContent(1, 0)
	assert.Equal(t, halfBlock, r)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0xFF, 0, 0), fg)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0xFF), bg)

	_, _, style, _ = scr.GetContent(0, 1)
	fg, bg, _ = style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), fg)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), bg)
}
