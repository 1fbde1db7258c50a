package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/portalroom/ecs"
	"github.com/milk9111/portalroom/ecs/component"
)

const (
	stickDeadzone = 0.2
	// stickLookScale is a full stick deflection in cursor pixels per update.
	stickLookScale = 12.0
)

// Input turns the keyboard, mouse and first gamepad into world intents.
// It never touches world state directly.
type Input struct {
	lastX, lastY int
	primed       bool
}

func NewInput() *Input {
	return &Input{}
}

// Release forgets the last cursor position. Call it whenever the cursor is
// freed.
func (in *Input) Release() {
	if in == nil {
		return
	}
	in.primed = false
}

func (in *Input) Update(w *ecs.World) {
	if in == nil || w == nil {
		return
	}

	spec := w.Spec()
	sensitivity := spec.Player.LookSensitivity
	turn := spec.Player.TurnSpeed * spec.TickSeconds

	forward := ebiten.IsKeyPressed(ebiten.KeyW)
	back := ebiten.IsKeyPressed(ebiten.KeyS)
	left := ebiten.IsKeyPressed(ebiten.KeyA)
	right := ebiten.IsKeyPressed(ebiten.KeyD)
	fireA := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	fireB := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	jump := inpututil.IsKeyJustPressed(ebiten.KeySpace)

	dYaw, dPitch := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dYaw -= turn
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dYaw += turn
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dPitch += turn
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dPitch -= turn
	}

	x, y := ebiten.CursorPosition()
	if in.primed {
		dYaw += float64(x-in.lastX) * sensitivity
		dPitch -= float64(y-in.lastY) * sensitivity
	}
	in.lastX, in.lastY = x, y
	in.primed = true

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]

		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		forward = forward || ly < -stickDeadzone
		back = back || ly > stickDeadzone
		left = left || lx < -stickDeadzone
		right = right || lx > stickDeadzone

		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(rx, ry) > stickDeadzone {
			dYaw += rx * stickLookScale * sensitivity
			dPitch -= ry * stickLookScale * sensitivity
		}

		jump = jump || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		fireA = fireA || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontBottomLeft)
		fireB = fireB || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
	}

	if dYaw != 0 || dPitch != 0 {
		w.SetLookDelta(dYaw, dPitch)
	}
	if forward {
		w.ApplyMovementIntent(component.MoveForward)
	}
	if back {
		w.ApplyMovementIntent(component.MoveBack)
	}
	if left {
		w.ApplyMovementIntent(component.MoveLeft)
	}
	if right {
		w.ApplyMovementIntent(component.MoveRight)
	}
	if jump {
		w.Jump()
	}
	if fireA {
		w.Fire(component.MarkerA)
	}
	if fireB {
		w.Fire(component.MarkerB)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		w.ResetGame()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		w.ClearPortals()
	}
}
