package fixture

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

// Runner is a minimal test-execution driver: it sequences fixture Before
// hooks, a test body, and fixture After hooks the way an external test
// runner invokes attribute hooks around a test method.
type Runner struct {
	log logrus.FieldLogger
}

// NewRunner returns a Runner. WithLogger is the only option it reads.
func NewRunner(opts ...Option) *Runner {
	s := resolve(opts)
	return &Runner{log: s.log}
}

// Run invokes each fixture's Before in declaration order, then body, then
// each After in reverse order.
//
// A Before failure skips the remaining Befores and the body. After hooks
// run for every fixture regardless — fixtures whose Before never ran treat
// teardown as a no-op. All errors are joined; the earliest failure comes
// first.
func (r *Runner) Run(ctx context.Context, test Identity, body func() error, fixtures ...Fixture) error {
	var errs []error

	for _, f := range fixtures {
		if err := f.Before(ctx, test); err != nil {
			r.log.WithFields(logrus.Fields{"test": test.Name, "error": err}).
				Warn("fixture setup failed")
			errs = append(errs, err)
			break
		}
	}

	if len(errs) == 0 && body != nil {
		if err := body(); err != nil {
			errs = append(errs, err)
		}
	}

	for i := len(fixtures) - 1; i >= 0; i-- {
		if err := fixtures[i].After(ctx, test); err != nil {
			r.log.WithFields(logrus.Fields{"test": test.Name, "error": err}).
				Warn("fixture teardown failed")
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
