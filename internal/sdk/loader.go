package sdk

import (
	"errors"
	"sync"
)

// Loader owns the process-wide handle to the native library.
type Loader struct {
	open OpenFunc

	mu     sync.Mutex
	loaded bool
	eps    Entrypoints
}

var defaultLoader = NewLoader(openLibrary)

// Default returns the loader bound to the real sdk.dll. It is shared by the
// whole process.
func Default() *Loader { return defaultLoader }

// NewLoader returns a loader that resolves entry points with open. Tests use
// it to count load attempts without a DLL.
func NewLoader(open OpenFunc) *Loader {
	return &Loader{open: open}
}

// Load performs the one-time load. It reports true when this call did the
// load and false when an earlier call already had. Concurrent callers are
// serialized so open runs at most once successfully.
func (l *Loader) Load() (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.loaded {
		return false, nil
	}
	if l.open == nil {
		return false, ErrNotBuilt
	}
	eps, err := l.open()
	if err != nil {
		return false, err
	}
	if eps.Init == nil || eps.Destroy == nil {
		return false, errors.New("sdk: entry points not resolved")
	}
	l.eps = eps
	l.loaded = true
	return true, nil
}

// Loaded reports whether a load has succeeded.
func (l *Loader) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}

// InitSDK calls WxInitSDK. The native call runs without holding the loader
// lock; injection into the target process can take several seconds.
func (l *Loader) InitSDK(debug bool, port int32) (int32, error) {
	eps, err := l.entrypoints()
	if err != nil {
		return 0, err
	}
	return eps.Init(debug, port), nil
}

// DestroySDK calls WxDestroySDK.
func (l *Loader) DestroySDK() (int32, error) {
	eps, err := l.entrypoints()
	if err != nil {
		return 0, err
	}
	return eps.Destroy(), nil
}

func (l *Loader) entrypoints() (Entrypoints, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.loaded {
		return Entrypoints{}, ErrNotLoaded
	}
	return l.eps, nil
}
