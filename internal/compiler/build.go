package compiler

import (
	"context"
	"fmt"
	"os"
	"time"

	"hotreload/internal/artifact"
)

// Result is the outcome of one K operation. Failure of the toolchain (or of
// a lockfile-protocol filesystem step) is reported through the error
// returned alongside it; Diagnostics carries whatever the compiler printed
// to stderr.
type Result struct {
	Diagnostics string
	Elapsed     time.Duration
}

// BuildExecutable implements build_executable(main_src, out_exe): a
// synchronous, unconditional compile of the generated main TU (§4.4). It
// links against libdl for the runtime's dlopen/dlsym calls.
func (c *Compiler) BuildExecutable(ctx context.Context, mainSrc, outExe string) (Result, error) {
	start := time.Now()
	c.Progress.OnEvent(Event{Stage: StageExecutable, Status: StatusWorking})

	if err := c.lookPath(); err != nil {
		res := Result{Diagnostics: err.Error(), Elapsed: time.Since(start)}
		c.Progress.OnEvent(Event{Stage: StageExecutable, Status: StatusError, Err: err, Elapsed: res.Elapsed})
		return res, err
	}

	args := append([]string{}, c.CXXFlags...)
	args = append(args, "-std=c++17", mainSrc, "-o", outExe, "-ldl", "-lpthread")
	diag, err := runCommand(ctx, c.CXX, args...)
	res := Result{Diagnostics: diag, Elapsed: time.Since(start)}
	if err != nil {
		c.Progress.OnEvent(Event{Stage: StageExecutable, Status: StatusError, Err: err, Elapsed: res.Elapsed})
		return res, fmt.Errorf("compiler: build_executable: %w: %s", err, diag)
	}
	c.Progress.OnEvent(Event{Stage: StageExecutable, Status: StatusDone, Elapsed: res.Elapsed})
	return res, nil
}

// BuildSharedObject implements build_shared_object(src, out_lib, lock),
// obeying the five-step lockfile protocol exactly as §4.4 specifies:
//
//  1. create lock exclusively (fail if it already exists);
//  2. write source to paths.Src;
//  3. invoke the compiler;
//  4. on success, atomically rename the produced object over paths.Lib;
//  5. delete lock — always, whether the compile succeeded or failed; on
//     failure paths.Lib is left untouched.
//
// name identifies the reloadable function for progress events only.
func (c *Compiler) BuildSharedObject(ctx context.Context, name, source string, paths artifact.Paths) (Result, error) {
	start := time.Now()
	c.Progress.OnEvent(Event{Name: name, Stage: StageSharedObject, Status: StatusWorking})

	fail := func(err error, diag string) (Result, error) {
		res := Result{Diagnostics: diag, Elapsed: time.Since(start)}
		c.Progress.OnEvent(Event{Name: name, Stage: StageSharedObject, Status: StatusError, Err: err, Elapsed: res.Elapsed})
		return res, err
	}

	lockFile, err := os.OpenFile(paths.Lock, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fail(fmt.Errorf("compiler: lock %q already held: %w", paths.Lock, err), "")
	}
	lockFile.Close()

	// From here on every exit path must remove the lock (R4): its presence
	// on disk is the sole signal H uses to defer loading.
	removeLock := func() { _ = os.Remove(paths.Lock) }

	if err := os.WriteFile(paths.Src, []byte(source), 0o644); err != nil {
		removeLock()
		return fail(fmt.Errorf("compiler: write %q: %w", paths.Src, err), "")
	}

	if err := c.lookPath(); err != nil {
		removeLock()
		return fail(err, err.Error())
	}

	tmpOut := paths.Lib + ".building"
	args := append([]string{}, c.CXXFlags...)
	args = append(args, "-std=c++17", "-shared", "-fPIC", paths.Src, "-o", tmpOut)
	diag, err := runCommand(ctx, c.CXX, args...)
	if err != nil {
		_ = os.Remove(tmpOut)
		removeLock()
		return fail(fmt.Errorf("compiler: build_shared_object %q: %w: %s", name, err, diag), diag)
	}

	if err := os.Rename(tmpOut, paths.Lib); err != nil {
		_ = os.Remove(tmpOut)
		removeLock()
		return fail(fmt.Errorf("compiler: rename %q over %q: %w", tmpOut, paths.Lib, err), "")
	}

	removeLock()
	res := Result{Diagnostics: diag, Elapsed: time.Since(start)}
	c.Progress.OnEvent(Event{Name: name, Stage: StageSharedObject, Status: StatusDone, Elapsed: res.Elapsed})
	return res, nil
}
