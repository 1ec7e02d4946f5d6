// Package logger provides a structured logging facility based on Zap.
//
// The debug level selects zap's development preset; any other level uses the
// production preset at that level. Console output uses colored level names and
// drops stack traces; JSON output is meant for log shippers.
//
// # Request Scope
//
// WithRayID reads the ray id stored by the rayid middleware and attaches it to
// the logger, so every line of a request can be correlated.
//
// # Usage
//
//	log, err := logger.New(&cfg.Log)
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
