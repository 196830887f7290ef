package logger

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors/errbase"
)

// traceLines renders a cockroachdb stack trace as "function file:line",
// innermost frame first, without the runtime frames at the bottom.
func traceLines(s errbase.StackTrace) []string {
	lines := make([]string, 0, len(s))
	bottom := len(s)
	for bottom > 0 {
		fn := runtime.FuncForPC(uintptr(s[bottom-1]) - 1)
		if fn == nil || !strings.HasPrefix(fn.Name(), "runtime.") {
			break
		}
		bottom--
	}
	for _, frame := range s[:bottom] {
		pc := uintptr(frame) - 1
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			lines = append(lines, "unknown")
			continue
		}
		file, line := fn.FileLine(pc)
		lines = append(lines, fmt.Sprintf("%s %s:%d", fn.Name(), file, line))
	}
	return lines
}
