package main

import (
	"fmt"
	"strings"

	"github.com/automoto/tooth/config"
	"github.com/automoto/tooth/controller"
	"github.com/gdamore/tcell/v2"
)

// Terminals report presses and auto-repeats but never releases, so a key
// counts as held for holdTicks after its last event.
const holdTicks = 18

var namedKeys = map[string]tcell.Key{
	"ArrowLeft":  tcell.KeyLeft,
	"ArrowRight": tcell.KeyRight,
	"ArrowUp":    tcell.KeyUp,
	"ArrowDown":  tcell.KeyDown,
	"Enter":      tcell.KeyEnter,
	"Escape":     tcell.KeyEscape,
	"Tab":        tcell.KeyTab,
	"Backspace":  tcell.KeyBackspace2,
}

// keymap resolves key events to buttons and keeps their hold timers.
type keymap struct {
	keys  map[tcell.Key]controller.Button
	runes map[rune]controller.Button
	held  map[controller.Button]int
}

// newKeymap maps the configured key names onto terminal keys. Names the
// terminal cannot report are skipped and returned.
func newKeymap(bindings map[controller.Button]config.InputBinding) (*keymap, []string) {
	km := &keymap{
		keys:  make(map[tcell.Key]controller.Button),
		runes: make(map[rune]controller.Button),
		held:  make(map[controller.Button]int),
	}
	var skipped []string
	for b, binding := range bindings {
		for _, name := range binding.Keys {
			switch {
			case name == "Space":
				km.runes[' '] |= b
			case len(name) == 1:
				km.runes[rune(strings.ToLower(name)[0])] |= b
			default:
				k, ok := namedKeys[name]
				if !ok {
					skipped = append(skipped, fmt.Sprintf("%s=%s", b, name))
					continue
				}
				km.keys[k] |= b
			}
		}
	}
	return km, skipped
}

// press records a key event.
func (km *keymap) press(ev *tcell.EventKey) {
	var b controller.Button
	if ev.Key() == tcell.KeyRune {
		b = km.runes[toLower(ev.Rune())]
	} else {
		b = km.keys[ev.Key()]
	}
	for bit := controller.Button(1); bit != 0 && bit <= b; bit <<= 1 {
		if b&bit != 0 {
			km.held[bit] = holdTicks
		}
	}
}

// sample returns the held buttons and ages every hold timer by one tick.
func (km *keymap) sample() controller.Button {
	var out controller.Button
	for b, left := range km.held {
		out |= b
		if left <= 1 {
			delete(km.held, b)
		} else {
			km.held[b] = left - 1
		}
	}
	return out
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + 'a' - 'A'
	}
	return r
}
