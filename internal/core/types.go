package core

import (
	"sort"
	"time"
)

// Scene defines the lifecycle every screen of the game must implement.
type Scene interface {
	Name() string
	// Create activates the scene and runs its one-time setup.
	Create() error
	// Update advances the scene by delta. It must not block.
	Update(delta time.Duration)
	// Exit deactivates the scene.
	Exit() error
	Active() bool
}

// Factory constructs a Scene using an optional configuration map.
type Factory func(log Logger, cfg map[string]string) Scene

var scenes = map[string]Factory{}

// Register adds a scene factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	scenes[name] = f
}

// Scenes exposes the registry of available scene factories.
func Scenes() map[string]Factory {
	return scenes
}

// SceneNames returns the registered scene names in sorted order.
func SceneNames() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
