// Package logging provides the logging facade used by the wcf client.
//
// Logger wraps the subset of log/slog the client needs, with a context on
// every call. Applications pass their own implementation through
// wcf.Config.Logger or let the client bind to slog.Default():
//
//	logger := logging.New(nil)
//
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	client := wcf.NewClient(wcf.Config{Logger: logging.New(slog.New(handler))})
//
// The client logs lifecycle transitions at info, transport failures at error,
// and per-message listener activity at debug. Message bodies are never logged;
// Redacted marks where one was left out.
package logging
