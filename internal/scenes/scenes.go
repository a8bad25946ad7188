// Package scenes implements the four scenes of the pet app: boot, preload,
// home and game. Scenes are pure logic over core types and register
// themselves with the registry on import.
package scenes

import "github.com/vovakirdan/tui-pet/internal/registry"

func init() {
	registry.Register(NewBoot().Name(), func() registry.Scene { return NewBoot() })
	registry.Register(NewPreload().Name(), func() registry.Scene { return NewPreload() })
	registry.Register(NewHome().Name(), func() registry.Scene { return NewHome() })
	registry.Register(NewGame().Name(), func() registry.Scene { return NewGame() })
}
