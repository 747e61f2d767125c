//go:build windows

package sdk

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func openLibrary() (Entrypoints, error) {
	dll, err := windows.LoadDLL(LibraryName)
	if err != nil {
		return Entrypoints{}, fmt.Errorf("sdk: load %s: %w", LibraryName, err)
	}
	initProc, err := dll.FindProc(initSymbol)
	if err != nil {
		_ = dll.Release()
		return Entrypoints{}, fmt.Errorf("sdk: resolve %s: %w", initSymbol, err)
	}
	destroyProc, err := dll.FindProc(destroySymbol)
	if err != nil {
		_ = dll.Release()
		return Entrypoints{}, fmt.Errorf("sdk: resolve %s: %w", destroySymbol, err)
	}

	// The DLL is never released; the entry points stay valid for the life of
	// the process.
	return Entrypoints{
		Init: func(debug bool, port int32) int32 {
			var flag uintptr
			if debug {
				flag = 1
			}
			r, _, _ := initProc.Call(flag, uintptr(port))
			return int32(r)
		},
		Destroy: func() int32 {
			r, _, _ := destroyProc.Call()
			return int32(r)
		},
	}, nil
}
