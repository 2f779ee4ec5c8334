package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup builds the process-wide slog.Logger and installs it as the default,
// mirroring the teacher's bootstrap step but driven by config instead of a
// hardcoded JSON handler: format "text" selects the text handler and any
// other value the JSON handler, and level follows the usual slog names.
func Setup(format, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var base slog.Handler
	if strings.EqualFold(format, "text") {
		base = slog.NewTextHandler(os.Stdout, opts)
	} else {
		base = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(NewContextHandler(base))
	slog.SetDefault(logger)
	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
