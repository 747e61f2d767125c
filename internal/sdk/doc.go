// Package sdk loads the WeChatFerry native SDK library and exposes its two
// entry points.
//
// # Design Principles
//
// 1. Isolation: all native loading lives in this package. No other package
//    touches the DLL or its symbols.
//
// 2. Minimal Surface: only WxInitSDK and WxDestroySDK are resolved. Everything
//    else the SDK offers is reached over its sockets.
//
// 3. Load Once: the library is loaded at most once per process. A Loader
//    remembers a successful load forever; a failed attempt leaves it unloaded
//    and is not retried until the next explicit Load call.
//
// # Platforms
//
// The library only exists on Windows. On every other platform Load returns
// ErrNotBuilt so that the rest of the module still compiles and can be tested
// with an injected OpenFunc.
package sdk
