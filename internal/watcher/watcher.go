package watcher

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"hotreload/internal/artifact"
	"hotreload/internal/compiler"
	"hotreload/internal/diag"
)

// debounceInterval absorbs the burst of events most editors generate for a
// single logical save (write-then-rename-into-place, multiple writes).
const debounceInterval = 75 * time.Millisecond

// Watcher owns W's reconciliation loop (§4.5): it watches SourcePath for
// content changes and, on each settled change, reruns L+V+C and reconciles
// the result against the previously known reloadable functions.
type Watcher struct {
	SourcePath string
	Paths      map[string]artifact.Paths
	Compiler   *compiler.Compiler
	Cache      *artifact.DiskCache
	Progress   ProgressSink

	known map[string]Patch
}

// New constructs a Watcher primed with the known_patches state produced by
// the driver's initial build, so the first reconcile pass has a baseline to
// diff against. cache may be nil; when provided, the body hash of every
// successful rebuild is written to it. New does not read the cache: the
// baseline comes from initial alone.
func New(sourcePath string, paths map[string]artifact.Paths, initial map[string]Patch, cache *artifact.DiskCache, c *compiler.Compiler, sink ProgressSink) *Watcher {
	if sink == nil {
		sink = NopSink{}
	}
	k := make(map[string]Patch, len(initial))
	for name, p := range initial {
		k[name] = p
	}
	return &Watcher{SourcePath: sourcePath, Paths: paths, Compiler: c, Cache: cache, Progress: sink, known: k}
}

// Run blocks watching SourcePath until ctx is cancelled. Rename and remove
// events are logged and ignored (§4.5): the prior program remains live.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	dir := filepath.Dir(w.SourcePath)
	if err := fsw.Add(dir); err != nil {
		return err
	}

	var debounce *time.Timer
	fire := make(chan struct{}, 1)
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.SourcePath) {
				continue
			}
			if ev.Op&(fsnotify.Rename|fsnotify.Remove) != 0 {
				w.Progress.OnEvent(Event{Status: StatusStale, Message: "source file renamed or removed, ignoring (prior program stays live)"})
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if debounce == nil {
				debounce = time.AfterFunc(debounceInterval, func() {
					select {
					case fire <- struct{}{}:
					default:
					}
				})
			} else {
				debounce.Reset(debounceInterval)
			}

		case <-fire:
			w.reconcileOnce(ctx)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.Progress.OnEvent(Event{Status: StatusStale, Message: "watch error: " + err.Error()})
		}
	}
}

// reconcileOnce implements §4.5 steps 1-3 for a single observed change.
func (w *Watcher) reconcileOnce(ctx context.Context) {
	content, err := os.ReadFile(w.SourcePath)
	if err != nil {
		w.Progress.OnEvent(Event{Status: StatusStale, Message: "read failed: " + err.Error()})
		return
	}

	bag := diag.NewBag(64)
	out, _, ok := runPipeline(content, filepath.Base(w.SourcePath), w.Paths, bag, w.Progress)
	if !ok {
		return
	}

	w.known = reconcile(ctx, w.known, out, w.Paths, w.Compiler, w.Cache, w.Progress)
}
