package gridoracle

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with gridoracle-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithGrid adds the grid dimensions to the logger.
func (l *Logger) WithGrid(rows, cols int) *Logger {
	return &Logger{
		Logger: l.Logger.With("rows", rows, "cols", cols),
	}
}

// LogCompile logs the result of compiling a circuit.
func (l *Logger) LogCompile(qubits, ancillas, gates int) {
	l.Debug("circuit compiled",
		"qubits", qubits,
		"ancillas", ancillas,
		"gates", gates,
	)
}

// LogRounds logs an appended amplification schedule.
func (l *Logger) LogRounds(rounds, gates int) {
	l.Debug("amplification rounds appended",
		"rounds", rounds,
		"gates", gates,
	)
}
