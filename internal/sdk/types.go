package sdk

import "errors"

const (
	// LibraryName is the file name of the native SDK.
	LibraryName = "sdk.dll"

	initSymbol    = "WxInitSDK"
	destroySymbol = "WxDestroySDK"
)

var (
	// ErrNotBuilt reports that the native library cannot be loaded on the
	// current platform.
	ErrNotBuilt = errors.New("sdk: native library not available on this platform")

	// ErrNotLoaded is returned by InitSDK and DestroySDK before a successful
	// Load.
	ErrNotLoaded = errors.New("sdk: native library not loaded")
)

// Entrypoints holds the resolved native functions. A zero result means
// success; anything else is an SDK-defined failure code.
type Entrypoints struct {
	Init    func(debug bool, port int32) int32
	Destroy func() int32
}

// OpenFunc loads the library and resolves its entry points.
type OpenFunc func() (Entrypoints, error)
