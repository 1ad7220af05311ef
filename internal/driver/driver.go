package driver

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"hotreload/internal/artifact"
	"hotreload/internal/compiler"
	"hotreload/internal/diag"
	"hotreload/internal/observ"
	"hotreload/internal/validator"
	"hotreload/internal/watcher"
)

// Request configures one end-to-end run: parse, validate, build, launch,
// then watch (§2, §5).
type Request struct {
	SourcePath     string
	MaxDiagnostics int
	CXXFlags       []string
	CompilerSink   compiler.ProgressSink
	WatcherSink    watcher.ProgressSink
}

// Result is what the driver hands back once the generated program has been
// launched and the watch loop has started.
type Result struct {
	Program *exec.Cmd
	Manager *artifact.Manager
	Timings observ.Report
}

// Run executes L→V→C→A→K→launch, starts W's watch loop in a background
// goroutine that runs until ctx is cancelled, and returns as soon as the
// program has been launched. A parse/validate failure is driver-fatal: per
// §6/S5, no binary is launched; Run prints the diagnostics to stderr and
// returns an error.
func Run(ctx context.Context, req Request) (*Result, error) {
	timer := observ.NewTimer()

	pIdx := timer.Begin("parse")
	pres, err := Parse(req.SourcePath, req.MaxDiagnostics)
	timer.End(pIdx, "")
	if err != nil {
		return nil, fmt.Errorf("driver: parse: %w", err)
	}
	if !pres.OK {
		RenderBag(os.Stderr, pres.Bag, pres.FileSet)
		return &Result{Timings: timer.Report()}, fmt.Errorf("driver: DSL source contains parse errors")
	}

	vIdx := timer.Begin("validate")
	vres := validator.Validate(pres.Program, diag.BagReporter{Bag: pres.Bag})
	timer.End(vIdx, "")
	if !vres.OK {
		RenderBag(os.Stderr, pres.Bag, pres.FileSet)
		return &Result{Timings: timer.Report()}, fmt.Errorf("driver: DSL source failed validation")
	}

	mgr, err := artifact.New()
	if err != nil {
		return nil, fmt.Errorf("driver: %w", err)
	}

	cache, err := artifact.OpenDiskCache(mgr.RunDir)
	if err != nil {
		_ = mgr.Close()
		return nil, fmt.Errorf("driver: %w", err)
	}

	c := compiler.New(req.CXXFlags, req.CompilerSink)

	bIdx := timer.Begin("build")
	build, err := Build(ctx, pres, vres, mgr, c)
	timer.End(bIdx, "")
	if err != nil {
		_ = mgr.Close()
		return nil, fmt.Errorf("driver: build: %w", err)
	}

	cmd, err := Launch(ctx, build.MainExe)
	if err != nil {
		_ = mgr.Close()
		return nil, fmt.Errorf("driver: launch: %w", err)
	}

	w := watcher.New(req.SourcePath, build.Paths, build.Known, cache, c, req.WatcherSink)
	go func() { _ = w.Run(ctx) }()

	return &Result{Program: cmd, Manager: mgr, Timings: timer.Report()}, nil
}
