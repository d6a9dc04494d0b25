// Package logging provides the minimal Logger interface the solver writes to,
// an adapter over log/slog, and a no-op logger used when logging is disabled.
//
// Usage:
//
//	logger := logging.New(logging.Config{Level: logging.LevelDebug, Format: "json"})
//	res, err := solver.Solve(root, solver.WithLogger(logger))
package logging
