package systems

import (
	"fmt"
	"sort"

	"github.com/automoto/tooth/archetypes"
	"github.com/automoto/tooth/components"
	cfg "github.com/automoto/tooth/config"
	"github.com/automoto/tooth/controller"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// keyBindings is cfg.Input.Bindings with the key names resolved.
var keyBindings map[controller.Button][]ebiten.Key

// padBindings maps standard layout gamepad buttons onto the same buttons
// the keyboard drives.
var padBindings = map[controller.Button][]ebiten.StandardGamepadButton{
	controller.Left:  {ebiten.StandardGamepadButtonLeftLeft},
	controller.Right: {ebiten.StandardGamepadButtonLeftRight},
	controller.Up:    {ebiten.StandardGamepadButtonLeftTop},
	controller.Down:  {ebiten.StandardGamepadButtonLeftBottom},
	controller.Start: {ebiten.StandardGamepadButtonCenterRight},
	controller.A:     {ebiten.StandardGamepadButtonRightBottom},
	controller.B:     {ebiten.StandardGamepadButtonRightLeft},
	controller.C:     {ebiten.StandardGamepadButtonRightRight},
}

// BindKeys resolves the configured key names. Unknown names are an error
// so a typo in the settings file is reported at startup.
func BindKeys(bindings map[controller.Button]cfg.InputBinding) error {
	resolved := make(map[controller.Button][]ebiten.Key, len(bindings))
	var unknown []string
	for b, binding := range bindings {
		for _, name := range binding.Keys {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(name)); err != nil {
				unknown = append(unknown, fmt.Sprintf("%s=%q", b, name))
				continue
			}
			resolved[b] = append(resolved[b], k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unknown keys: %v", unknown)
	}
	keyBindings = resolved
	return nil
}

// UpdateInput samples the keyboard and gamepads into the Input component.
// Must run BEFORE UpdatePause and UpdateLevel in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if keyBindings == nil {
		if err := BindKeys(cfg.Input.Bindings); err != nil {
			logger.Warn("input bindings", zap.Error(err))
		}
	}

	var sample controller.Button
	for b, keys := range keyBindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				sample |= b
			}
		}
	}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for b, buttons := range padBindings {
			for _, btn := range buttons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					sample |= b
				}
			}
		}
		sample |= analogStick(gpID)
	}

	input.Buttons = input.Buttons.Next(sample)
}

// analogStick reads the left stick as directional buttons.
func analogStick(gpID ebiten.GamepadID) controller.Button {
	deadzone := cfg.Input.AnalogDeadzone
	horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
	vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

	var b controller.Button
	if horizontal < -deadzone {
		b |= controller.Left
	}
	if horizontal > deadzone {
		b |= controller.Right
	}
	if vertical < -deadzone {
		b |= controller.Up
	}
	if vertical > deadzone {
		b |= controller.Down
	}
	return b
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = archetypes.Input.Spawn(ecs)
	}
	return components.Input.Get(entry)
}
