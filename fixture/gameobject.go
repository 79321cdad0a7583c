package fixture

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/CodeSmile-0000011110110111/de.codesmile.testtools/engine"
)

// GameObjectFixture instantiates one named object with a fixed set of
// components before a test and destroys it after.
//
// The fixture owns the instance exclusively: no other component may hold a
// reference to it past the test body. Teardown with no instance (Before
// never ran, or failed) is a no-op so that an earlier failure stays the
// one reported.
type GameObjectFixture struct {
	objects    engine.ObjectFactory
	name       string
	components []engine.ComponentType
	mode       engine.Mode
	log        logrus.FieldLogger

	instance engine.GameObject
}

// NewGameObject returns a fixture instantiating an object named
// DefaultGameObjectName unless WithName overrides it. Components given via
// WithComponents are attached in order.
func NewGameObject(objects engine.ObjectFactory, opts ...Option) *GameObjectFixture {
	s := resolve(opts)
	return &GameObjectFixture{
		objects:    objects,
		name:       s.objectName,
		components: s.components,
		mode:       s.mode,
		log:        s.log,
	}
}

// Instance returns the object created by Before, or nil outside the
// before/after window.
func (f *GameObjectFixture) Instance() engine.GameObject { return f.instance }

// Before instantiates the configured object. An instantiation failure (for
// example an unknown component type) aborts the test before its body runs.
func (f *GameObjectFixture) Before(ctx context.Context, test Identity) error {
	obj, err := f.objects.Instantiate(f.name, f.components...)
	if err != nil {
		return fmt.Errorf("instantiate %q: %w", f.name, err)
	}
	f.instance = obj
	f.log.WithFields(logrus.Fields{"object": f.name, "test": test.Name}).
		Debug("instantiated test object")
	return nil
}

// After destroys the instance created by Before, if any.
func (f *GameObjectFixture) After(ctx context.Context, test Identity) error {
	if f.instance == nil {
		// Nothing was created; nothing to release.
		return nil
	}
	destroy(f.objects, f.mode, f.instance)
	f.instance = nil
	f.log.WithField("object", f.name).Debug("destroyed test object")
	return nil
}
