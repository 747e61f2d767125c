//go:build !windows

package sdk

// Stub for platforms without sdk.dll. Load reports ErrNotBuilt.
func openLibrary() (Entrypoints, error) {
	return Entrypoints{}, ErrNotBuilt
}
