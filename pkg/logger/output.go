package logger

import (
	"io"
	"log/slog"
	"strings"
)

// Output formats of the logger.
const (
	OutputText = "text"
	OutputJSON = "json"
	// OutputGCP is JSON with the keys of Cloud Logging structured logs.
	OutputGCP = "gcp"
)

func newHandler(w io.Writer, output string, options *slog.HandlerOptions) slog.Handler {
	switch strings.ToLower(output) {
	case OutputJSON:
		options.ReplaceAttr = attrReplacerChain(options.ReplaceAttr, durationToMsAttrReplacer)
		return slog.NewJSONHandler(w, options)
	case OutputGCP:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource:   true,
			Level:       options.Level,
			ReplaceAttr: attrReplacerChain(gcpAttrReplacer, options.ReplaceAttr, durationToMsAttrReplacer),
		})
	default:
		return slog.NewTextHandler(w, options)
	}
}

func gcpAttrReplacer(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return attr
	}
	switch attr.Key {
	case MessageKey:
		attr.Key = "message"
	case SourceKey:
		attr.Key = "logging.googleapis.com/sourceLocation"
	case LevelKey:
		attr.Key = "severity"
		if lvl, ok := attr.Value.Any().(slog.Level); ok {
			attr.Value = slog.StringValue(gcpSeverity(lvl))
		}
	}
	return attr
}

// https://cloud.google.com/logging/docs/reference/v2/rest/v2/LogEntry#logseverity
func gcpSeverity(lvl slog.Level) string {
	switch {
	case lvl < slog.LevelInfo:
		return "DEBUG"
	case lvl < slog.LevelWarn:
		return "INFO"
	case lvl < slog.LevelError:
		return "WARNING"
	case lvl < LevelCritical:
		return "ERROR"
	case lvl < LevelPanic:
		return "CRITICAL"
	case lvl < LevelFatal:
		return "ALERT"
	default:
		return "EMERGENCY"
	}
}
