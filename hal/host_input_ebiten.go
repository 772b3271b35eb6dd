//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// wheelScale converts ebiten wheel offsets (lines) into DOM-like pixel deltas.
const wheelScale = 100

func (in *hostInput) poll() {
	x, y := ebiten.CursorPosition()

	buttons := 0
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		buttons |= ButtonPrimary
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		buttons |= ButtonSecondary
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		buttons |= ButtonMiddle
	}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		in.down = true
		in.emit(InputEvent{Kind: PointerDown, X: float64(x), Y: float64(y), Buttons: buttons})
	case in.down && buttons&ButtonPrimary == 0:
		in.down = false
		in.emit(InputEvent{Kind: PointerUp, X: float64(x), Y: float64(y), Buttons: buttons})
	}
	if x != in.lastX || y != in.lastY || buttons != in.buttons {
		in.emit(InputEvent{Kind: PointerMove, X: float64(x), Y: float64(y), Buttons: buttons})
	}
	in.lastX, in.lastY, in.buttons = x, y, buttons

	if _, yoff := ebiten.Wheel(); yoff != 0 {
		in.emit(InputEvent{Kind: Wheel, X: float64(x), Y: float64(y), DeltaY: -yoff * wheelScale})
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		in.emit(InputEvent{Kind: KeyPress, Rune: r})
	}

	keys := [...]struct {
		key  ebiten.Key
		code KeyCode
	}{
		{ebiten.KeyArrowUp, KeyUp},
		{ebiten.KeyArrowDown, KeyDown},
		{ebiten.KeyArrowLeft, KeyLeft},
		{ebiten.KeyArrowRight, KeyRight},
		{ebiten.KeyEnter, KeyEnter},
		{ebiten.KeyEscape, KeyEscape},
		{ebiten.KeyTab, KeyTab},
		{ebiten.KeyBackspace, KeyBackspace},
	}
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k.key) {
			in.emit(InputEvent{Kind: KeyPress, Code: k.code})
		}
	}
}
