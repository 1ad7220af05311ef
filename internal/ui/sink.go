package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"hotreload/internal/compiler"
	"hotreload/internal/diag"
	"hotreload/internal/watcher"
)

var sevTag = map[diag.Severity]*color.Color{
	diag.SevInfo:    color.New(color.FgCyan, color.Bold),
	diag.SevWarning: color.New(color.FgYellow, color.Bold),
	diag.SevError:   color.New(color.FgRed, color.Bold),
	diag.SevFatal:   color.New(color.FgHiRed, color.Bold),
}

func logLine(sev diag.Severity, name, msg string) {
	tag := sevTag[sev].Sprint(sev.String())
	if name == "" {
		fmt.Fprintf(os.Stderr, "%s %s\n", tag, msg)
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s: %s\n", tag, name, msg)
}

// CompilerSink adapts K's progress events into the ui package's vocabulary,
// and — since K's Err/Diagnostics are the only place the toolchain's stderr
// output survives (§7, S4) — also logs a severity-tagged line for every
// terminal event so that output isn't lost when running the bubbletea TUI,
// which only renders a status word per row.
type CompilerSink struct{ Ch chan<- Event }

// OnEvent implements compiler.ProgressSink.
func (s CompilerSink) OnEvent(e compiler.Event) {
	status := "working"
	switch e.Status {
	case compiler.StatusQueued:
		status = "queued"
	case compiler.StatusDone:
		status = "done"
		logLine(diag.SevInfo, e.Name, fmt.Sprintf("%s build finished", e.Stage))
	case compiler.StatusError:
		status = "error"
		logLine(diag.SevError, e.Name, fmt.Sprintf("%s build failed: %v", e.Stage, e.Err))
	}
	if s.Ch != nil {
		s.Ch <- Event{Name: e.Name, Status: status}
	}
}

// WatcherSink adapts W's progress events into the ui package's vocabulary,
// and logs R1-R3 reload-policy rejections (WARN, old state kept) and
// rebuild failures (ERROR, with the compiler's diagnostics) to stderr so
// they survive independently of the per-row status word shown in the TUI.
type WatcherSink struct{ Ch chan<- Event }

// OnEvent implements watcher.ProgressSink.
func (s WatcherSink) OnEvent(e watcher.Event) {
	switch e.Status {
	case watcher.StatusStale:
		if e.Message != "" {
			logLine(diag.SevWarning, e.Name, e.Message)
		}
	case watcher.StatusFailed:
		msg := e.Message
		if e.Err != nil {
			if msg != "" {
				msg = fmt.Sprintf("%s: %v", msg, e.Err)
			} else {
				msg = e.Err.Error()
			}
		}
		logLine(diag.SevError, e.Name, msg)
	}
	if s.Ch != nil {
		s.Ch <- Event{Name: e.Name, Status: string(e.Status)}
	}
}
