package engine

import "errors"

// Sentinel errors shared by collaborator implementations and fixtures.
var (
	// ErrPlayModeUnsupported indicates play-mode scene handling was
	// requested but is not implemented. The intended behavior (which named
	// scene the runtime loader should fetch) was never finished upstream,
	// so both fixture hooks fail with this error in ModePlay instead of
	// silently doing nothing.
	ErrPlayModeUnsupported = errors.New("testtools: play-mode scene loading not supported")

	// ErrUnknownComponent indicates an Instantiate call named a component
	// type the engine does not know.
	ErrUnknownComponent = errors.New("testtools: unknown component type")

	// ErrNoAssetDir indicates a persistence operation was attempted on an
	// engine with no asset database location configured.
	ErrNoAssetDir = errors.New("testtools: no asset directory configured")
)
