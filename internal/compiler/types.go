package compiler

import "time"

// Stage identifies which of K's two operations an Event reports on.
type Stage string

const (
	// StageExecutable is build_executable (§4.4): the one-shot link of the
	// generated main TU plus the runtime header into the launched binary.
	StageExecutable Stage = "executable"
	// StageSharedObject is build_shared_object (§4.4): a single reloadable
	// function's TU, rebuilt under the lockfile protocol.
	StageSharedObject Stage = "shared_object"
)

// Status captures where a build stands within a Stage.
type Status string

const (
	// StatusQueued indicates the build has not yet invoked the toolchain.
	StatusQueued Status = "queued"
	// StatusWorking indicates the toolchain is currently running.
	StatusWorking Status = "working"
	// StatusDone indicates the toolchain exited zero and, for a shared
	// object, the lockfile protocol completed successfully.
	StatusDone Status = "done"
	// StatusError indicates the toolchain exited non-zero or a filesystem
	// step of the lockfile protocol failed.
	StatusError Status = "error"
)

// Event reports progress for one compile. Name is the reloadable function's
// name for StageSharedObject, empty for StageExecutable.
type Event struct {
	Name    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes K's progress events. The watcher (W) and the
// terminal UI both implement this to learn about build outcomes as they
// happen rather than only from a build's final return value.
type ProgressSink interface {
	OnEvent(Event)
}

// NopSink discards every event. It is the default when no sink is supplied.
type NopSink struct{}

// OnEvent implements ProgressSink.
func (NopSink) OnEvent(Event) {}
