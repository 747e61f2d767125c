package wcf

import (
	"errors"
	"fmt"

	"github.com/hsiuhsiu/wcferry-go/internal/sdk"
)

var (
	// ErrNotInitialized is returned by operations that need Init first.
	ErrNotInitialized = errors.New("wcf: sdk not initialized")

	// ErrAlreadyInitialized is returned by Init while a port is active.
	ErrAlreadyInitialized = errors.New("wcf: sdk already initialized")

	// ErrInvalidPort rejects ports that leave no room for the message port.
	ErrInvalidPort = errors.New("wcf: invalid port")

	// ErrAlreadyConnected is returned by Connect when a command socket exists.
	ErrAlreadyConnected = errors.New("wcf: command socket already connected")

	// ErrDisconnected is returned by RPCs while no command socket exists. No
	// network operation is attempted.
	ErrDisconnected = errors.New("wcf: command socket disconnected")

	// ErrRemoteNoData is returned when the SDK answers a listen toggle with no
	// payload at all.
	ErrRemoteNoData = errors.New("wcf: remote side returned no data")

	// ErrNotBuilt reports that the native SDK is unavailable on this platform.
	ErrNotBuilt = sdk.ErrNotBuilt

	// ErrNotLoaded reports a native call before the SDK was loaded.
	ErrNotLoaded = sdk.ErrNotLoaded
)

// InitError carries the non-zero code returned by WxInitSDK.
type InitError struct {
	Port uint16
	Code int32
}

func (e *InitError) Error() string {
	return fmt.Sprintf("wcf: init sdk on port %d failed, result=%d", e.Port, e.Code)
}
