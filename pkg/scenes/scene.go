package scenes

import (
	"github.com/decker502/tinytype/pkg/game"
)

// Scene is a type alias for game.Scene so callers can depend on this package alone.
type Scene = game.Scene
