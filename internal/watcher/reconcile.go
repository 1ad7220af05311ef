package watcher

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"hotreload/internal/artifact"
	"hotreload/internal/compiler"
	"hotreload/internal/diag"
	"hotreload/internal/lexer"
	"hotreload/internal/lowerer"
	"hotreload/internal/parser"
	"hotreload/internal/source"
	"hotreload/internal/validator"
)

// Patch is W's memory of one reloadable function's last-applied source, the
// known_patches map of §4.5.
type Patch struct {
	Signature  string
	SourceHash string
}

// runPipeline re-runs L+V+C on freshly-read file content. A parse or
// validate failure is reported via a nameless Event and runPipeline returns
// ok=false; the caller must leave all prior known state untouched (§4.5
// step 1).
func runPipeline(content []byte, fileName string, paths map[string]artifact.Paths, bag *diag.Bag, sink ProgressSink) (lowerer.Output, validator.Result, bool) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(fileName, content)

	bagReporter := diag.BagReporter{Bag: bag}
	lexAdapter := &lexer.ReporterAdapter{Bag: bag}

	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: lexAdapter.Reporter()})
	pres := parser.ParseFile(lx, parser.Options{Reporter: bagReporter})
	if !pres.OK {
		sink.OnEvent(Event{Status: StatusStale, Message: "parse failed, keeping prior program"})
		return lowerer.Output{}, validator.Result{}, false
	}

	vres := validator.Validate(pres.Program, bagReporter)
	if !vres.OK {
		sink.OnEvent(Event{Status: StatusStale, Message: "validation failed, keeping prior program"})
		return lowerer.Output{}, validator.Result{}, false
	}

	out, err := lowerer.Lower(pres.Program, vres, paths)
	if err != nil {
		sink.OnEvent(Event{Status: StatusStale, Message: fmt.Sprintf("lowering failed: %v", err)})
		return lowerer.Output{}, validator.Result{}, false
	}
	return out, vres, true
}

// reconcile applies §4.5 step 3 against known, returning the updated
// known_patches map. Names present in both maps with a changed signature or
// a parse/validate failure upstream are left exactly as they were; names
// newly appearing are ignored per R3; names missing from the fresh build
// are logged and kept per the "deletion unsupported" rule. cache may be
// nil; when present, every successful rebuild is recorded in it. Nothing
// in this package reads those records back.
func reconcile(ctx context.Context, known map[string]Patch, out lowerer.Output, paths map[string]artifact.Paths, c *compiler.Compiler, cache *artifact.DiskCache, sink ProgressSink) map[string]Patch {
	fresh := make(map[string]lowerer.Unit, len(out.Units))
	for _, u := range out.Units {
		fresh[u.Name] = u
	}

	next := make(map[string]Patch, len(known))
	for name, prev := range known {
		u, ok := fresh[name]
		if !ok {
			sink.OnEvent(Event{Name: name, Status: StatusStale, Message: "deletion unsupported, keeping prior program"})
			next[name] = prev
			continue
		}
		if u.Signature != prev.Signature {
			sink.OnEvent(Event{Name: name, Status: StatusStale, Message: "signature changed, keeping prior program (R1)"})
			next[name] = prev
			continue
		}
		hash := hashSource(u.Source)
		if hash == prev.SourceHash {
			sink.OnEvent(Event{Name: name, Status: StatusUpToDate})
			next[name] = prev
			continue
		}

		sink.OnEvent(Event{Name: name, Status: StatusRebuilding})
		p, ok := paths[name]
		if !ok {
			sink.OnEvent(Event{Name: name, Status: StatusFailed, Message: "no artifact paths allocated for this unit"})
			next[name] = prev
			continue
		}
		if _, err := c.BuildSharedObject(ctx, name, u.Source, p); err != nil {
			sink.OnEvent(Event{Name: name, Status: StatusFailed, Err: err})
			next[name] = prev
			continue
		}
		next[name] = Patch{Signature: u.Signature, SourceHash: hash}
		// Best-effort: a cache write failure doesn't undo a successful rebuild.
		_ = cache.Put(name, artifact.BodyRecord{Name: name, Signature: u.Signature, BodyHash: hash})
	}

	for name := range fresh {
		if _, ok := known[name]; !ok {
			sink.OnEvent(Event{Name: name, Status: StatusStale, Message: "addition unsupported, ignored (R3)"})
		}
	}

	return next
}

func hashSource(src string) string {
	sum := sha256.Sum256([]byte(src))
	return hex.EncodeToString(sum[:])
}
