package fixture

import "fmt"

// PersistenceError reports a failed scene save or asset delete. The
// underlying collaborator error is preserved for errors.Is/As.
type PersistenceError struct {
	// Op is "save" or "delete".
	Op string
	// Path is the canonical asset path the operation targeted.
	Path string
	// Err is the collaborator's error.
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("testtools: %s scene asset %q: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
