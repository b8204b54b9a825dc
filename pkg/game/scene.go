package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is what the frame driver runs each tick.
type Scene interface {
	// Update advances the scene by one frame. keys holds the characters
	// typed since the previous frame, in order.
	Update(keys []rune)

	// Draw renders the scene to the provided screen.
	// It must not advance any state.
	Draw(screen *ebiten.Image)

	// SetScreenSize is called from Layout whenever the window size is known.
	SetScreenSize(width, height int)
}
