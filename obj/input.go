package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/boxworld/system"
)

const stickDeadZone = 0.3

// Input polls keyboard and the first gamepad once per frame.
type Input struct {
	MoveX float64
	MoveY float64
	// JumpPressed is true on the frame the jump key is pressed.
	JumpPressed bool
	// PausePressed toggles the pause menu.
	PausePressed bool
	// ResetPressed rebuilds the level.
	ResetPressed bool
	// DebugPressed toggles the debug overlay.
	DebugPressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard and gamepad.
func (i *Input) Update() {
	var moveX, moveY float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		moveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		moveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		moveY += 1
	}

	var gpJumpJustPressed, gpPauseJustPressed bool
	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]

		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -stickDeadZone {
			moveX = -1
		} else if leftX > stickDeadZone {
			moveX = 1
		}
		leftY := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical)
		if leftY < -stickDeadZone {
			moveY = -1
		} else if leftY > stickDeadZone {
			moveY = 1
		}

		// A / cross
		gpJumpJustPressed = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		gpPauseJustPressed = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight)
	}

	i.MoveX = moveX
	i.MoveY = moveY
	i.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace) || gpJumpJustPressed
	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || gpPauseJustPressed
	i.ResetPressed = inpututil.IsKeyJustPressed(ebiten.KeyR)
	i.DebugPressed = inpututil.IsKeyJustPressed(ebiten.KeyF3)
}

// Frame converts the polled state into simulation input. Jumps fire on the
// press, not while held.
func (i *Input) Frame() system.Input {
	return system.Input{MoveX: i.MoveX, MoveY: i.MoveY, Jump: i.JumpPressed}
}
