package fixture

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/CodeSmile-0000011110110111/de.codesmile.testtools/engine"
)

// DefaultGameObjectName is the object name used when WithName is not given.
const DefaultGameObjectName = "Test GameObject"

// settings holds resolved configuration shared by the fixture constructors.
// Constructors read only the fields that apply to them.
type settings struct {
	mode       engine.Mode
	log        logrus.FieldLogger
	scenePath  string
	objectName string
	components []engine.ComponentType
}

// Option configures a fixture or Runner at construction time.
type Option func(*settings)

func resolve(opts []Option) settings {
	s := settings{
		mode:       engine.ModeEdit,
		log:        nopLogger(),
		objectName: DefaultGameObjectName,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithMode sets the execution context the fixture runs in. The default is
// engine.ModeEdit. In engine.ModePlay both hooks currently fail with
// engine.ErrPlayModeUnsupported.
func WithMode(mode engine.Mode) Option {
	return func(s *settings) { s.mode = mode }
}

// WithLogger routes fixture lifecycle logging to the given logger. The
// default discards everything.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *settings) {
		if log != nil {
			s.log = log
		}
	}
}

// WithScenePath requests persistence of the created scene to the given raw
// path, normalized through scenepath.Normalize. Empty or whitespace-only
// paths leave the scene unpersisted. Only SceneFixture reads this.
func WithScenePath(raw string) Option {
	return func(s *settings) { s.scenePath = raw }
}

// WithName sets the instantiated object's name. Only GameObjectFixture
// reads this.
func WithName(name string) Option {
	return func(s *settings) { s.objectName = name }
}

// WithComponents sets the component types attached at instantiation, in
// order. Only GameObjectFixture reads this.
func WithComponents(components ...engine.ComponentType) Option {
	return func(s *settings) { s.components = components }
}

func nopLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
