package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state
type PauseData struct {
	IsPaused bool
	Frames   int // ticks spent paused, drives the overlay blink
}

var Pause = donburi.NewComponentType[PauseData]()
