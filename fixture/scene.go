package fixture

import (
	"context"
	"fmt"

	"github.com/elliotchance/pie/v2"
	"github.com/sirupsen/logrus"

	"github.com/CodeSmile-0000011110110111/de.codesmile.testtools/engine"
	"github.com/CodeSmile-0000011110110111/de.codesmile.testtools/scenepath"
)

// SceneFixture creates a scene before a test and tears it down after.
//
// Before creates a new active scene with the configured setup kind, unless
// the active scene already carries this fixture's scene name (a re-run
// without reset does not recreate). With WithScenePath the scene is also
// saved to the asset database.
//
// After destroys the active scene's root objects — sparing the engine's
// default camera and light when the scene was created with
// engine.SetupDefaultObjects — and deletes the persisted scene asset, if
// any. Save and delete failures are fatal and surface as *PersistenceError.
type SceneFixture struct {
	scenes  engine.SceneManager
	objects engine.ObjectFactory
	setup   engine.SceneSetup
	mode    engine.Mode
	log     logrus.FieldLogger

	// path is the canonical asset path, "" when the scene is not persisted.
	// Computed once at construction and reused by both hooks.
	path string
}

// NewScene returns a fixture creating a scene with the given setup kind.
// The scenes collaborator creates, saves and deletes; the objects
// collaborator destroys root objects during teardown.
func NewScene(scenes engine.SceneManager, objects engine.ObjectFactory, setup engine.SceneSetup, opts ...Option) *SceneFixture {
	s := resolve(opts)
	return &SceneFixture{
		scenes:  scenes,
		objects: objects,
		setup:   setup,
		mode:    s.mode,
		log:     s.log,
		path:    scenepath.Normalize(s.scenePath),
	}
}

// Path returns the canonical asset path the fixture persists to, or ""
// when persistence was not requested.
func (f *SceneFixture) Path() string { return f.path }

// SceneName returns the name given to scenes this fixture creates:
// "Test [<kind>] <base>", where base is the persisted file name when a path
// is set, else the setup kind's name.
func (f *SceneFixture) SceneName() string {
	base := f.setup.String()
	if f.path != "" {
		base = scenepath.Base(f.path)
	}
	return fmt.Sprintf("Test [%s] %s", f.setup, base)
}

// Before creates (and optionally saves) the test scene.
func (f *SceneFixture) Before(ctx context.Context, test Identity) error {
	if f.mode == engine.ModePlay {
		// Runtime scene loading is not wired up. See
		// engine.ErrPlayModeUnsupported.
		return fmt.Errorf("prepare scene for %q: %w", test.Name, engine.ErrPlayModeUnsupported)
	}

	name := f.SceneName()
	if active := f.scenes.ActiveScene(); active != nil && active.Name() == name {
		f.log.WithField("scene", name).Debug("active scene already prepared")
		return nil
	}

	if _, err := f.scenes.CreateScene(f.setup, name); err != nil {
		return fmt.Errorf("create %s scene: %w", f.setup, err)
	}
	f.log.WithFields(logrus.Fields{"scene": name, "test": test.Name}).
		Debug("created test scene")

	if f.path != "" {
		if err := f.scenes.SaveScene(f.scenes.ActiveScene(), f.path); err != nil {
			return &PersistenceError{Op: "save", Path: f.path, Err: err}
		}
		f.log.WithField("path", f.path).Debug("saved test scene")
	}
	return nil
}

// After sweeps the active scene's root objects and removes the persisted
// scene asset, if any.
func (f *SceneFixture) After(ctx context.Context, test Identity) error {
	if f.mode == engine.ModePlay {
		return fmt.Errorf("tear down scene for %q: %w", test.Name, engine.ErrPlayModeUnsupported)
	}

	if active := f.scenes.ActiveScene(); active != nil {
		for _, obj := range active.RootObjects() {
			if f.setup == engine.SetupDefaultObjects &&
				pie.Contains(engine.DefaultObjectNames, obj.Name()) {
				continue
			}
			destroy(f.objects, f.mode, obj)
		}
	}

	if f.path != "" {
		if err := f.scenes.DeleteAsset(f.path); err != nil {
			return &PersistenceError{Op: "delete", Path: f.path, Err: err}
		}
		f.log.WithField("path", f.path).Debug("deleted test scene asset")
	}
	return nil
}

// destroy releases obj with the timing the execution context guarantees:
// synchronous in the editing context, end-of-frame in the live context.
func destroy(objects engine.ObjectFactory, mode engine.Mode, obj engine.GameObject) {
	if mode == engine.ModePlay {
		objects.DestroyDeferred(obj)
		return
	}
	objects.DestroyImmediate(obj)
}
