package level

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/automoto/tooth/config"
	"github.com/automoto/tooth/fonts"
	"github.com/automoto/tooth/framebuffer"
	"github.com/automoto/tooth/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Canvas is a surface the HUD can also draw text into.
type Canvas interface {
	framebuffer.Surface
	draw.Image
}

// HUD draws the score line, the optional debug line and the sign textbox.
type HUD struct {
	Debug bool
	Box   Textbox

	face font.Face
	cell gamemath.Vec2 // glyph advance and line height
}

// NewHUD loads the HUD font and returns an empty HUD.
func NewHUD() *HUD {
	fonts.LoadDefaults(config.HUD.FontSize)
	face := fonts.Mono.Get()
	adv, _ := face.GlyphAdvance('M')
	cell := gamemath.V(int32(adv.Ceil()), int32(face.Metrics().Height.Ceil()))
	return &HUD{
		Debug: config.Debug.Overlay,
		Box:   Textbox{cell: cell},
		face:  face,
		cell:  cell,
	}
}

func (h *HUD) ShowText(msg string) { h.Box.Show(msg) }
func (h *HUD) HideText()           { h.Box.Hide() }

// Update advances the textbox one tick.
func (h *HUD) Update() { h.Box.Update() }

// Lines is the text of the score block. player is a fixed point position.
func (h *HUD) Lines(stats Stats, player gamemath.Vec2) []string {
	lines := []string{
		"SCORE     COINS  TIME",
		DecFormat(stats.Score, 8, true) + "  " + DecFormat(stats.Coins, 5, false) + "  " + Clock(stats.Timer),
	}
	if h.Debug {
		lines = append(lines, "", "POS "+HexFormat(player.X, 6, true)+" "+HexFormat(player.Y, 6, true))
	}
	return lines
}

// Clock formats a frame count as m:ss at 60 frames per second.
func Clock(frames int) string {
	minutes := frames / 60 / 60
	seconds := frames / 60 % 60
	return DecFormat(minutes, 1, false) + ":" + DecFormat(seconds, 2, true)
}

// Draw renders the HUD into c.
func (h *HUD) Draw(c Canvas, stats Stats, player gamemath.Vec2) {
	pos := gamemath.V(config.HUD.Position[0], config.HUD.Position[1])
	h.text(c, pos, strings.Join(h.Lines(stats, player), "\n"))
	h.Box.draw(c, h)
}

// text draws a block of lines with a one pixel drop shadow.
func (h *HUD) text(dst draw.Image, p gamemath.Vec2, s string) {
	drawText(dst, h.face, p.Add(gamemath.V(1, 1)), s, config.HUD.ShadowColor)
	drawText(dst, h.face, p, s, config.HUD.TextColor)
}

func drawText(dst draw.Image, face font.Face, p gamemath.Vec2, s string, c color.RGBA) {
	m := face.Metrics()
	lineH := m.Height.Ceil()
	d := font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: face}
	for i, line := range strings.Split(s, "\n") {
		d.Dot = fixed.P(int(p.X), int(p.Y)+m.Ascent.Ceil()+i*lineH)
		d.DrawString(line)
	}
}

// Textbox is the sign message box. It eases open around a fixed row, then
// types its message out one character per tick.
type Textbox struct {
	msg    string
	timer  int
	height float32
	tween  *gween.Tween
	bounds gamemath.Vec2 // longest line, line count
	cell   gamemath.Vec2
}

// Show opens the box with msg, restarting the reveal.
func (t *Textbox) Show(msg string) {
	t.msg = msg
	t.timer = 0
	t.height = 0
	t.bounds = textBounds(msg)
	t.ease(float32(4 + t.bounds.Y*t.cell.Y))
}

// Hide clears the message and closes the box.
func (t *Textbox) Hide() {
	t.msg = ""
	t.ease(0)
}

func (t *Textbox) ease(to float32) {
	ticks := max(config.HUD.BoxOpenTicks, 1)
	t.tween = gween.New(t.height, to, float32(ticks), ease.OutQuad)
}

// Update moves the box one tick toward its target height.
func (t *Textbox) Update() {
	if t.tween != nil {
		h, done := t.tween.Update(1)
		t.height = h
		if done {
			t.tween = nil
		}
	}
	if t.height > 0 {
		t.timer++
	}
}

// Open reports whether any of the box is visible.
func (t *Textbox) Open() bool { return t.Height() > 0 }

// Height is the current half height in pixels.
func (t *Textbox) Height() int32 { return int32(t.height) }

// Message returns the full message, empty once hidden.
func (t *Textbox) Message() string { return t.msg }

// Revealed is the part of the message typed out so far.
func (t *Textbox) Revealed() string {
	return t.msg[:min(t.timer, len(t.msg))]
}

func (t *Textbox) draw(c Canvas, h *HUD) {
	cfg := &config.HUD
	size := c.Size()
	half := t.bounds.X * t.cell.X / 2
	hstart := size.X/2 - half - cfg.BoxMargin
	hend := size.X/2 + half + cfg.BoxMargin

	if height := t.Height(); height > 0 {
		vstart := max(cfg.BoxCentre-height, cfg.BoxMinTop)
		vend := cfg.BoxCentre + height
		border, a, b := pack(cfg.BoxBorderColor), pack(cfg.BoxColor), pack(cfg.BoxAltColor)
		scroll := int32(t.timer / 2)
		for j := vstart; j < vend; j++ {
			for i := hstart; i < hend; i++ {
				px := c.Pixel(gamemath.V(i, j))
				if px == nil {
					continue
				}
				switch {
				case i == hstart || i == hend-1 || j == vstart || j == vend-1:
					*px = border
				case (i+scroll)/16%2 != (j+scroll)/16%2:
					*px = a
				default:
					*px = b
				}
			}
		}
	}
	if t.msg != "" {
		h.text(c, gamemath.V(hstart+cfg.BoxMargin, cfg.BoxCentre-4), t.Revealed())
	}
}

// textBounds returns the longest line length and the number of lines.
func textBounds(s string) gamemath.Vec2 {
	lines := strings.Split(s, "\n")
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	return gamemath.V(int32(width), int32(len(lines)))
}
