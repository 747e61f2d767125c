package wcf

var (
	Version = "v0.0.0-in-progress"
	// SDKVersion is the WeChatFerry release whose sdk.dll and wcf.proto this
	// client speaks.
	SDKVersion = "v39.2.4"
)

// ClientVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func ClientVersion() string {
	return Version
}

// UpstreamVersion returns the pinned WeChatFerry release.
func UpstreamVersion() string {
	return SDKVersion
}
