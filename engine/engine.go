// Package engine defines the collaborator vocabulary the fixture package
// drives: execution modes, scene setup kinds, component types, object and
// scene handles, and the manager interfaces a host engine implements.
//
// The package contains no behavior of its own. A host engine (or the
// in-memory fake in engine/enginetest) provides [SceneManager] and
// [ObjectFactory]; fixtures call through these interfaces and never reach
// past them.
package engine

import "context"

// Mode identifies the execution context a fixture runs in.
//
// The two contexts have different object-lifetime rules: the editing context
// releases objects synchronously, the live context defers release to the end
// of the current frame.
type Mode int

const (
	// ModeEdit is the design-time editing context.
	ModeEdit Mode = iota
	// ModePlay is the live simulation context.
	ModePlay
)

func (m Mode) String() string {
	switch m {
	case ModeEdit:
		return "Edit"
	case ModePlay:
		return "Play"
	default:
		return "Unknown"
	}
}

// SceneSetup selects which baseline objects a created scene starts with.
type SceneSetup int

const (
	// SetupEmpty creates a scene with no objects at all.
	SetupEmpty SceneSetup = iota
	// SetupDefaultObjects creates a scene with the engine's default camera
	// and directional light, named per DefaultObjectNames.
	SetupDefaultObjects
)

func (s SceneSetup) String() string {
	switch s {
	case SetupEmpty:
		return "EmptyScene"
	case SetupDefaultObjects:
		return "DefaultObjects"
	default:
		return "Unknown"
	}
}

// DefaultObjectNames lists the objects a SetupDefaultObjects scene starts
// with. Teardown sweeps leave objects with these names alone when the scene
// was created with SetupDefaultObjects.
var DefaultObjectNames = []string{"Main Camera", "Directional Light"}

// ComponentType names a component that can be attached to an object at
// instantiation time.
type ComponentType string

// GameObject is a handle to a live object in the host engine.
type GameObject interface {
	// Name returns the object's scene-graph name.
	Name() string
}

// Scene is a handle to a loaded scene.
type Scene interface {
	// Name returns the scene name, not the asset path.
	Name() string
	// RootObjects returns the scene's parentless objects in their natural
	// enumeration order.
	RootObjects() []GameObject
}

// LoadMode selects whether a runtime scene load replaces the loaded scene
// set or adds to it.
type LoadMode int

const (
	// LoadSingle unloads all current scenes before loading.
	LoadSingle LoadMode = iota
	// LoadAdditive loads alongside the current scenes.
	LoadAdditive
)

// SceneManager is the scene and asset-database collaborator.
type SceneManager interface {
	// CreateScene makes a new scene with the given baseline objects, names
	// it, and makes it the active scene.
	CreateScene(setup SceneSetup, name string) (Scene, error)

	// ActiveScene returns the currently active scene, or nil when none is
	// loaded.
	ActiveScene() Scene

	// SaveScene persists the scene to the given asset path.
	SaveScene(s Scene, path string) error

	// DeleteAsset removes the asset at path from the asset database.
	DeleteAsset(path string) error

	// LoadSceneAsync starts a runtime load of the scene asset at path.
	// Only meaningful in ModePlay. The fixtures do not call it yet; their
	// play-mode branch fails with ErrPlayModeUnsupported instead.
	LoadSceneAsync(ctx context.Context, path string, mode LoadMode) error
}

// ObjectFactory is the object-lifecycle collaborator.
type ObjectFactory interface {
	// Instantiate creates a named object at the active scene's root with
	// the given components attached in order.
	Instantiate(name string, components ...ComponentType) (GameObject, error)

	// DestroyImmediate removes the object synchronously. Editing-context
	// timing.
	DestroyImmediate(obj GameObject)

	// DestroyDeferred marks the object for removal at the end of the
	// current frame. Live-context timing.
	DestroyDeferred(obj GameObject)
}

// Engine combines the two collaborator interfaces a full host exposes.
type Engine interface {
	SceneManager
	ObjectFactory
}
