// Package compiler implements K: it wraps an external native toolchain to
// build the generated program's executable and, under a strict producer
// lockfile protocol, each reloadable function's shared object (§4.4).
package compiler

import (
	"os"
	"os/exec"
)

// Compiler wraps the native toolchain resolved from CXX (default c++).
// Exit codes and diagnostics propagate via each build's Result; a non-zero
// toolchain exit is never fatal to the caller — it is reported and the
// caller (W) decides what to do with it (§4.4).
type Compiler struct {
	CXX      string
	CXXFlags []string
	Progress ProgressSink
}

// New resolves CXX from the environment (falling back to "c++") and
// attaches sink for progress events. A nil sink is replaced with NopSink.
func New(cxxFlags []string, sink ProgressSink) *Compiler {
	cxx := os.Getenv("CXX")
	if cxx == "" {
		cxx = "c++"
	}
	if sink == nil {
		sink = NopSink{}
	}
	return &Compiler{CXX: cxx, CXXFlags: cxxFlags, Progress: sink}
}

// lookPath reports whether the resolved toolchain binary can be found,
// surfacing a clearer error than exec.Command's own "executable file not
// found" when CXX points at something that plain isn't installed.
func (c *Compiler) lookPath() error {
	_, err := exec.LookPath(c.CXX)
	return err
}
