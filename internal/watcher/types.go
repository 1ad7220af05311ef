// Package watcher implements W: it watches the single DSL source file for
// content changes and reconciles each change against the last known set of
// reloadable functions, rebuilding only what §4.5 says is safe to rebuild.
package watcher

// Status is the lifecycle state of one tracked reloadable function, as
// surfaced to the terminal UI.
type Status string

const (
	// StatusRegistered is the initial state right after the first build.
	StatusRegistered Status = "registered"
	// StatusUpToDate means the function's source is unchanged since the
	// last successful build.
	StatusUpToDate Status = "up_to_date"
	// StatusRebuilding means a changed body is currently being recompiled.
	StatusRebuilding Status = "rebuilding"
	// StatusFailed means the toolchain rejected the latest body; the
	// previous shared object remains live (R2).
	StatusFailed Status = "failed"
	// StatusStale means a change was observed but could not be applied —
	// a changed signature (R1) or a parse/validate failure — and the prior
	// known state was kept untouched.
	StatusStale Status = "stale"
)

// Event reports a status transition for one reloadable function, or for the
// whole source file when Name is empty (e.g. a parse/validate failure that
// blocks reconciliation entirely).
type Event struct {
	Name    string
	Status  Status
	Message string
	Err     error
}

// ProgressSink consumes W's events, letting the terminal UI and any test
// harness observe reconciliation outcomes without polling file state.
type ProgressSink interface {
	OnEvent(Event)
}

// NopSink discards every event.
type NopSink struct{}

// OnEvent implements ProgressSink.
func (NopSink) OnEvent(Event) {}
