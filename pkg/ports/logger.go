package ports

// LogLevel is the severity of a log line.
type LogLevel int

const (
	// LevelDebug is for internal detail (resolved options, full command lines).
	LevelDebug LogLevel = iota
	// LevelInfo is for user-facing progress output, including encoder output
	// forwarded line by line.
	LevelInfo
	// LevelWarn is for recoverable problems that do not stop the playblast.
	LevelWarn
	// LevelError is for failures that abort the current operation.
	LevelError
	// LevelQuiet suppresses all output.
	LevelQuiet
)

// String returns the log level name.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelQuiet:
		return "quiet"
	default:
		return "unknown"
	}
}

// ParseLogLevel parses a level name, defaulting to info.
func ParseLogLevel(s string) LogLevel {
	switch s {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	case "quiet":
		return LevelQuiet
	default:
		return LevelInfo
	}
}

// Logger is the output stream of the playblast. Every user-facing message
// goes through it as a discrete line; warnings and errors carry the
// [WARNING] and [ERROR] tags callers and tests rely on.
type Logger interface {
	// Debug logs internal detail.
	Debug(msg string, args ...interface{})

	// Info logs a plain informational line.
	Info(msg string, args ...interface{})

	// Warn logs a [WARNING]-tagged line.
	Warn(msg string, args ...interface{})

	// Error logs an [ERROR]-tagged line.
	Error(msg string, args ...interface{})

	// WithComponent returns a Logger that prefixes lines with a component
	// name, e.g. the encoder binary streaming its output.
	WithComponent(component string) Logger
}
