package components

import (
	"github.com/automoto/tooth/controller"
	"github.com/yohamta/donburi"
)

// InputData is the button mask sampled this frame and the one before.
// The level gets Current; the host reads edges from Buttons for pause.
type InputData struct {
	Buttons controller.Buttons
}

var Input = donburi.NewComponentType[InputData]()
