// Package controller turns per-frame button samples into held and
// just-pressed queries.
package controller

import "strings"

// Button is a bit in a button mask.
type Button uint32

const (
	Left Button = 1 << iota
	Right
	Up
	Down
	Start
	A
	B
	C
)

var buttonNames = []struct {
	b    Button
	name string
}{
	{Left, "left"}, {Right, "right"}, {Up, "up"}, {Down, "down"},
	{Start, "start"}, {A, "a"}, {B, "b"}, {C, "c"},
}

func (b Button) String() string {
	var parts []string
	for _, n := range buttonNames {
		if b&n.b != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// ParseButton maps a lowercase button name to its bit.
func ParseButton(name string) (Button, bool) {
	for _, n := range buttonNames {
		if n.name == name {
			return n.b, true
		}
	}
	return 0, false
}

// Buttons holds this frame's and last frame's masks.
type Buttons struct {
	Current Button
	Old     Button
}

// Next shifts the current mask into Old and stores the new sample.
func (b Buttons) Next(sample Button) Buttons {
	return Buttons{Current: sample, Old: b.Current}
}

// Held reports whether any of the given buttons is down this frame.
func (b Buttons) Held(mask Button) bool {
	return b.Current&mask != 0
}

// Pressed reports whether any of the given buttons went down this frame.
func (b Buttons) Pressed(mask Button) bool {
	return b.Current&^b.Old&mask != 0
}

// Edges returns every button that went down this frame.
func (b Buttons) Edges() Button {
	return b.Current &^ b.Old
}
