// Package fixture provides before/after lifecycle helpers for engine editor
// tests: scene creation and teardown, and test object instantiation and
// destruction.
//
// Each fixture is a [Fixture] — a before/after pair an external test driver
// invokes around a single test body. Fixtures are independent and
// composable: several may wrap the same test, each owning exactly the
// resources it created and releasing them unconditionally in After.
//
// # Core Types
//
//   - [SceneFixture] — creates a scene before a test (empty or with the
//     engine's default objects), sweeps it clean after, optionally
//     persisting it through the asset database.
//   - [GameObjectFixture] — instantiates a named object with components
//     before a test and destroys it after.
//   - [Runner] — a minimal test-execution driver sequencing fixtures
//     around a body.
//   - [Bind] — attaches fixtures to a *testing.T via t.Cleanup.
//
// # Quick Start
//
//	eng := enginetest.New(t.TempDir())
//	fixture.Bind(t,
//	    fixture.NewScene(eng, eng, engine.SetupDefaultObjects),
//	    fixture.NewGameObject(eng, fixture.WithComponents("Transform")),
//	)
package fixture

import "context"

// Identity names the test a fixture is wrapping.
type Identity struct {
	// Name is the test's fully qualified name.
	Name string
}

// Fixture is a before/after pair invoked around a single test body.
//
// After must release whatever Before created and must tolerate Before never
// having run: a failed or skipped setup is released as a no-op, never as a
// secondary error that would mask the original failure.
type Fixture interface {
	Before(ctx context.Context, test Identity) error
	After(ctx context.Context, test Identity) error
}
