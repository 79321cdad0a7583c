package fixture

import (
	"context"
	"testing"
)

// Bind attaches fixtures to a standard-library test: each fixture's Before
// runs immediately and its After is registered via t.Cleanup. Cleanups run
// last-in-first-out, so teardown order mirrors the reverse of setup order.
//
// After hooks are registered before Before runs, so teardown still happens
// (as a graceful no-op where nothing was created) when a setup fails
// mid-way.
func Bind(t *testing.T, fixtures ...Fixture) {
	t.Helper()

	ctx := context.Background()
	test := Identity{Name: t.Name()}

	for _, f := range fixtures {
		f := f
		t.Cleanup(func() {
			if err := f.After(ctx, test); err != nil {
				t.Errorf("fixture teardown: %v", err)
			}
		})
		if err := f.Before(ctx, test); err != nil {
			t.Fatalf("fixture setup: %v", err)
		}
	}
}
