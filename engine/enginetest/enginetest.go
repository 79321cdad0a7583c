// Package enginetest provides an in-memory fake of the engine collaborator
// interfaces, backed by a YAML asset database rooted at a directory.
//
// The fake is exported so consumers can exercise fixtures without a live
// host engine. It models the parts of the host the fixtures touch: an
// active scene with root objects, a component registry for instantiation,
// immediate and end-of-frame destruction, and scene save/delete through an
// asset directory. Call [Engine.Advance] to flush deferred destruction the
// way a frame boundary would.
package enginetest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/elliotchance/pie/v2"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/CodeSmile-0000011110110111/de.codesmile.testtools/engine"
)

// GameObject is the fake's object handle.
type GameObject struct {
	id         uuid.UUID
	name       string
	components []engine.ComponentType
	destroyed  bool
	pending    bool
}

// Name returns the object's scene-graph name.
func (o *GameObject) Name() string { return o.name }

// ID returns the object's unique identity.
func (o *GameObject) ID() uuid.UUID { return o.id }

// Components returns the component types attached at instantiation, in
// order.
func (o *GameObject) Components() []engine.ComponentType { return o.components }

// Destroyed reports whether the object has been released.
func (o *GameObject) Destroyed() bool { return o.destroyed }

// PendingDestroy reports whether the object is queued for end-of-frame
// release.
func (o *GameObject) PendingDestroy() bool { return o.pending }

// Scene is the fake's scene handle.
type Scene struct {
	name    string
	objects []*GameObject
}

// Name returns the scene name.
func (s *Scene) Name() string { return s.name }

// RootObjects returns the scene's objects in insertion order.
func (s *Scene) RootObjects() []engine.GameObject {
	return pie.Map(s.objects, func(o *GameObject) engine.GameObject { return o })
}

// Objects returns the concrete object handles for assertions.
func (s *Scene) Objects() []*GameObject { return s.objects }

// DefaultComponents returns the component registry a fresh fake starts
// with.
func DefaultComponents() []engine.ComponentType {
	return []engine.ComponentType{
		"Transform", "Camera", "Light", "MeshRenderer",
		"Rigidbody", "BoxCollider", "AudioSource",
	}
}

// Engine is an in-memory engine.Engine implementation.
//
// The zero value is not usable; construct with New. Engine is not safe for
// concurrent use: fixtures run on a single logical test thread.
type Engine struct {
	// AssetDir roots the fake asset database. Empty disables persistence;
	// SaveScene and DeleteAsset then fail with engine.ErrNoAssetDir.
	AssetDir string

	// Known is the component registry consulted by Instantiate.
	Known []engine.ComponentType

	// FailSave, when non-nil, is returned by every SaveScene call.
	FailSave error

	// FailDelete, when non-nil, is returned by every DeleteAsset call.
	FailDelete error

	active      *Scene
	deferred    []*GameObject
	createCalls int
}

var _ engine.Engine = (*Engine)(nil)

// New returns a fake engine whose asset database lives under assetDir.
// The initial active scene is an unnamed, empty "Untitled" scene.
func New(assetDir string) *Engine {
	return &Engine{
		AssetDir: assetDir,
		Known:    DefaultComponents(),
		active:   &Scene{name: "Untitled"},
	}
}

// CreateScene makes a new scene the active scene. SetupDefaultObjects
// scenes start with the objects named in engine.DefaultObjectNames.
func (e *Engine) CreateScene(setup engine.SceneSetup, name string) (engine.Scene, error) {
	s := &Scene{name: name}
	if setup == engine.SetupDefaultObjects {
		s.objects = []*GameObject{
			{id: uuid.New(), name: "Main Camera", components: []engine.ComponentType{"Transform", "Camera"}},
			{id: uuid.New(), name: "Directional Light", components: []engine.ComponentType{"Transform", "Light"}},
		}
	}
	e.active = s
	e.createCalls++
	return s, nil
}

// ActiveScene returns the current scene.
func (e *Engine) ActiveScene() engine.Scene { return e.active }

// CreateCalls returns how many scenes have been created, for idempotency
// assertions.
func (e *Engine) CreateCalls() int { return e.createCalls }

// SaveScene writes the scene as a YAML file under AssetDir.
func (e *Engine) SaveScene(s engine.Scene, path string) error {
	if e.FailSave != nil {
		return e.FailSave
	}
	if e.AssetDir == "" {
		return engine.ErrNoAssetDir
	}
	fs, ok := s.(*Scene)
	if !ok {
		return fmt.Errorf("enginetest: foreign scene handle %T", s)
	}
	file := SceneFile{Name: fs.name}
	for _, o := range fs.objects {
		file.Objects = append(file.Objects, ObjectDef{
			Name: o.name,
			Components: pie.Map(o.components, func(c engine.ComponentType) string {
				return string(c)
			}),
		})
	}
	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("enginetest: encode scene: %w", err)
	}
	target := e.assetPath(path)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("enginetest: create asset folder: %w", err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("enginetest: write scene: %w", err)
	}
	return nil
}

// DeleteAsset removes the asset file at path. Deleting an asset that was
// never saved is an error, matching asset-database semantics.
func (e *Engine) DeleteAsset(path string) error {
	if e.FailDelete != nil {
		return e.FailDelete
	}
	if e.AssetDir == "" {
		return engine.ErrNoAssetDir
	}
	if err := os.Remove(e.assetPath(path)); err != nil {
		return fmt.Errorf("enginetest: delete asset: %w", err)
	}
	return nil
}

// LoadSceneAsync is the play-mode loader. The fake has no runtime to load
// into.
func (e *Engine) LoadSceneAsync(_ context.Context, path string, _ engine.LoadMode) error {
	return fmt.Errorf("enginetest: load %q: %w", path, engine.ErrPlayModeUnsupported)
}

// Instantiate creates an object at the active scene's root. Every component
// must be present in the Known registry.
func (e *Engine) Instantiate(name string, components ...engine.ComponentType) (engine.GameObject, error) {
	for _, c := range components {
		if !pie.Contains(e.Known, c) {
			return nil, fmt.Errorf("enginetest: instantiate %q: %w: %q", name, engine.ErrUnknownComponent, c)
		}
	}
	o := &GameObject{id: uuid.New(), name: name, components: components}
	e.active.objects = append(e.active.objects, o)
	return o, nil
}

// DestroyImmediate removes the object from the active scene synchronously.
// Handles the fake did not create are ignored.
func (e *Engine) DestroyImmediate(obj engine.GameObject) {
	o, ok := obj.(*GameObject)
	if !ok {
		return
	}
	o.destroyed = true
	e.active.objects = pie.Filter(e.active.objects, func(x *GameObject) bool {
		return x != o
	})
}

// DestroyDeferred queues the object for release at the next Advance call.
func (e *Engine) DestroyDeferred(obj engine.GameObject) {
	o, ok := obj.(*GameObject)
	if !ok {
		return
	}
	o.pending = true
	e.deferred = append(e.deferred, o)
}

// Advance ends the current frame, releasing every deferred object.
func (e *Engine) Advance() {
	for _, o := range e.deferred {
		o.pending = false
		e.DestroyImmediate(o)
	}
	e.deferred = nil
}

func (e *Engine) assetPath(path string) string {
	return filepath.Join(e.AssetDir, filepath.FromSlash(path))
}

// SceneFile is the on-disk YAML shape of a saved scene.
type SceneFile struct {
	Name    string      `yaml:"name"`
	Objects []ObjectDef `yaml:"objects,omitempty"`
}

// ObjectDef is one object entry in a SceneFile.
type ObjectDef struct {
	Name       string   `yaml:"name"`
	Components []string `yaml:"components,omitempty"`
}

// ReadSceneFile decodes the scene file at the given filesystem path.
func ReadSceneFile(file string) (SceneFile, error) {
	var sf SceneFile
	data, err := os.ReadFile(file)
	if err != nil {
		return sf, fmt.Errorf("enginetest: read scene: %w", err)
	}
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return sf, fmt.Errorf("enginetest: decode scene: %w", err)
	}
	return sf, nil
}

// AssetPath returns where an asset path lands on disk, for assertions.
func (e *Engine) AssetPath(path string) string { return e.assetPath(path) }
