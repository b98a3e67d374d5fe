package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/2022831007/SDL-Game-Project/internal/core"
)

// keyActions binds window keys to game actions.
var keyActions = map[ebiten.Key]core.Action{
	ebiten.KeyArrowUp:     core.ActionUp,
	ebiten.KeyW:           core.ActionUp,
	ebiten.KeyArrowDown:   core.ActionDown,
	ebiten.KeyS:           core.ActionDown,
	ebiten.KeyArrowLeft:   core.ActionLeft,
	ebiten.KeyA:           core.ActionLeft,
	ebiten.KeyArrowRight:  core.ActionRight,
	ebiten.KeyD:           core.ActionRight,
	ebiten.KeyEnter:       core.ActionConfirm,
	ebiten.KeyNumpadEnter: core.ActionConfirm,
	ebiten.KeyR:           core.ActionRestart,
	ebiten.KeyEscape:      core.ActionBack,
}

// MapKey returns the action bound to k, or ActionNone.
func MapKey(k ebiten.Key) core.Action {
	return keyActions[k]
}

// inputSource appends the input of one ebiten tick to a frame.
type inputSource interface {
	read(frame *core.InputFrame)
}

// inputReader polls ebiten. Keys pressed within the same ebiten tick come
// back in key-code order, so the engine polls at the display rate and
// collects presses across ticks until the game is due to step.
type inputReader struct {
	keys []ebiten.Key
}

// read appends this tick's key presses, the left click and the window close
// request to frame. A close request arrives as ActionQuit.
func (r *inputReader) read(frame *core.InputFrame) {
	r.keys = inpututil.AppendJustPressedKeys(r.keys[:0])
	for _, k := range r.keys {
		frame.Set(MapKey(k))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		frame.Click(x, y)
	}

	if ebiten.IsWindowBeingClosed() {
		frame.Set(core.ActionQuit)
	}
}
