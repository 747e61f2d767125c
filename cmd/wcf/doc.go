// Command wcf drives a local WeChatFerry SDK from the command line.
//
// Each invocation loads sdk.dll, initializes it on the configured port,
// connects the command channel and runs one subcommand. A lock file per port
// keeps two wcf processes from driving the same SDK instance.
package main
