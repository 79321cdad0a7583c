// Package scenepath canonicalizes scene asset paths.
//
// Scene assets live under the engine's asset root folder and carry the scene
// file extension. Normalize turns a loosely written identifier like "Level1"
// or "Levels/Boss" into the exact path the asset database expects, e.g.
// "Assets/Level1.unity". It does nothing else: no segment validation, no
// path collapsing.
package scenepath

import (
	"path"
	"strings"
)

const (
	// AssetRoot is the folder prefix every scene asset path starts with.
	AssetRoot = "Assets/"

	// Extension is the scene file extension.
	Extension = ".unity"
)

// Normalize returns the canonical asset path for raw, or "" when raw is
// empty or whitespace-only (meaning no persistence was requested).
//
// The result always starts with AssetRoot and ends with Extension; inputs
// that already carry either are left untouched, so Normalize is idempotent:
// Normalize(Normalize(p)) == Normalize(p).
//
// An input consisting of only the extension yields "Assets/.unity". That is
// a quirk of the prefix/suffix rules, kept as-is rather than rejected.
func Normalize(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	p := raw
	if !strings.HasPrefix(p, AssetRoot) {
		p = AssetRoot + p
	}
	if !strings.HasSuffix(p, Extension) {
		p += Extension
	}
	return p
}

// Base returns the file name component of a canonical path, extension
// included: Base("Assets/Levels/Boss.unity") == "Boss.unity". Returns ""
// for the empty path.
func Base(canonical string) string {
	if canonical == "" {
		return ""
	}
	return path.Base(canonical)
}
