package driver

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"hotreload/internal/artifact"
	"hotreload/internal/compiler"
	"hotreload/internal/lowerer"
	"hotreload/internal/validator"
	"hotreload/internal/watcher"
)

// BuildResult is everything the initial build produces: the executable
// path, the allocated artifact paths, and the known_patches baseline W
// needs before it starts watching.
type BuildResult struct {
	MainExe string
	Paths   map[string]artifact.Paths
	Known   map[string]watcher.Patch
}

// Build runs A→C→K for one program that V has already validated: it
// allocates the per-function path quadruples, lowers every translation
// unit, writes the main TU, and compiles the executable plus every
// reloadable function's initial shared object in parallel (§4.3/§4.4 name
// no ordering requirement between these builds; all of them finish before
// Build returns and the executable is launched).
func Build(ctx context.Context, prog *ParseResult, vres validator.Result, mgr *artifact.Manager, c *compiler.Compiler) (BuildResult, error) {
	paths := make(map[string]artifact.Paths, len(vres.Units))
	for _, m := range vres.Units {
		paths[m.Name] = mgr.PathsFor(m.Name)
	}

	out, err := lowerer.Lower(prog.Program, vres, paths)
	if err != nil {
		return BuildResult{}, fmt.Errorf("driver: lower: %w", err)
	}

	if err := writeMainSource(mgr.MainSrc, out.MainSource); err != nil {
		return BuildResult{}, err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		_, err := c.BuildExecutable(gctx, mgr.MainSrc, mgr.MainExe)
		return err
	})

	known := make(map[string]watcher.Patch, len(out.Units))
	for _, u := range out.Units {
		u := u
		g.Go(func() error {
			p := paths[u.Name]
			if _, err := c.BuildSharedObject(gctx, u.Name, u.Source, p); err != nil {
				return fmt.Errorf("initial build of %q: %w", u.Name, err)
			}
			return nil
		})
		known[u.Name] = watcher.Patch{Signature: u.Signature, SourceHash: ""}
	}

	if err := g.Wait(); err != nil {
		return BuildResult{}, err
	}

	for _, u := range out.Units {
		known[u.Name] = watcher.Patch{Signature: u.Signature, SourceHash: hashUnitSource(u.Source)}
	}

	return BuildResult{MainExe: mgr.MainExe, Paths: paths, Known: known}, nil
}
