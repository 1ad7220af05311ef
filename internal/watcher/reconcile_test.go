package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"hotreload/internal/artifact"
	"hotreload/internal/compiler"
	"hotreload/internal/lowerer"
)

type collectingSink struct{ events []Event }

func (s *collectingSink) OnEvent(e Event) { s.events = append(s.events, e) }

func (s *collectingSink) statusFor(name string) (Status, bool) {
	for i := len(s.events) - 1; i >= 0; i-- {
		if s.events[i].Name == name {
			return s.events[i].Status, true
		}
	}
	return "", false
}

func fakeCompiler(t *testing.T, failOn string) *compiler.Compiler {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "fake-cxx.sh")
	script := "#!/bin/sh\n" +
		"out=\"\"\nprev=\"\"\n" +
		"for a in \"$@\"; do\n  if [ \"$prev\" = \"-o\" ]; then out=\"$a\"; fi\n  prev=\"$a\"\ndone\n"
	if failOn != "" {
		script += "case \"$*\" in *" + failOn + "*) exit 1;; esac\n"
	}
	script += "echo built > \"$out\"\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write fake cxx: %v", err)
	}
	c := compiler.New(nil, nil)
	c.CXX = path
	return c
}

func tmpPaths(t *testing.T, name string) artifact.Paths {
	t.Helper()
	dir := t.TempDir()
	return artifact.Paths{
		Src:  filepath.Join(dir, name+".src"),
		Lib:  filepath.Join(dir, name+".lib"),
		Copy: filepath.Join(dir, name+".copy"),
		Lock: filepath.Join(dir, name+".lock"),
	}
}

func TestReconcileUnchangedStaysUpToDate(t *testing.T) {
	p := tmpPaths(t, "scale")
	unit := lowerer.Unit{Name: "scale", Source: "body A", Signature: "int32_t(int32_t)"}
	known := map[string]Patch{"scale": {Signature: unit.Signature, SourceHash: hashSource(unit.Source)}}

	sink := &collectingSink{}
	next := reconcile(context.Background(), known, lowerer.Output{Units: []lowerer.Unit{unit}},
		map[string]artifact.Paths{"scale": p}, fakeCompiler(t, ""), nil, sink)

	if next["scale"] != known["scale"] {
		t.Fatalf("expected unchanged patch to survive reconcile untouched")
	}
	if st, _ := sink.statusFor("scale"); st != StatusUpToDate {
		t.Fatalf("expected up_to_date event, got %s", st)
	}
}

func TestReconcileBodyChangeRebuildsAndUpdatesHash(t *testing.T) {
	p := tmpPaths(t, "scale")
	oldUnit := lowerer.Unit{Name: "scale", Source: "body A", Signature: "int32_t(int32_t)"}
	newUnit := lowerer.Unit{Name: "scale", Source: "body B", Signature: "int32_t(int32_t)"}
	known := map[string]Patch{"scale": {Signature: oldUnit.Signature, SourceHash: hashSource(oldUnit.Source)}}

	sink := &collectingSink{}
	next := reconcile(context.Background(), known, lowerer.Output{Units: []lowerer.Unit{newUnit}},
		map[string]artifact.Paths{"scale": p}, fakeCompiler(t, ""), nil, sink)

	if next["scale"].SourceHash != hashSource(newUnit.Source) {
		t.Fatalf("expected known_patches hash updated to the new body")
	}
	if _, err := os.Stat(p.Lib); err != nil {
		t.Fatalf("expected out_lib rebuilt: %v", err)
	}
	if st, _ := sink.statusFor("scale"); st != StatusRebuilding {
		t.Fatalf("expected last emitted status to be rebuilding (before done), events=%+v", sink.events)
	}
}

func TestReconcileSignatureChangeKeepsOldState(t *testing.T) {
	p := tmpPaths(t, "scale")
	oldUnit := lowerer.Unit{Name: "scale", Source: "body A", Signature: "int32_t(int32_t)"}
	newUnit := lowerer.Unit{Name: "scale", Source: "body B", Signature: "int32_t(int32_t, int32_t)"}
	known := map[string]Patch{"scale": {Signature: oldUnit.Signature, SourceHash: hashSource(oldUnit.Source)}}

	sink := &collectingSink{}
	next := reconcile(context.Background(), known, lowerer.Output{Units: []lowerer.Unit{newUnit}},
		map[string]artifact.Paths{"scale": p}, fakeCompiler(t, ""), nil, sink)

	if next["scale"] != known["scale"] {
		t.Fatalf("expected signature-changed unit to keep its prior patch untouched (R1)")
	}
	if _, err := os.Stat(p.Lib); !os.IsNotExist(err) {
		t.Fatalf("expected no build to have run for a signature change")
	}
}

func TestReconcileDeletionKeepsOldState(t *testing.T) {
	known := map[string]Patch{"scale": {Signature: "int32_t(int32_t)", SourceHash: "deadbeef"}}
	sink := &collectingSink{}
	next := reconcile(context.Background(), known, lowerer.Output{}, map[string]artifact.Paths{}, fakeCompiler(t, ""), nil, sink)

	if next["scale"] != known["scale"] {
		t.Fatalf("expected deleted-from-source unit's patch kept untouched")
	}
}

func TestReconcileAdditionIsIgnored(t *testing.T) {
	newUnit := lowerer.Unit{Name: "brandNew", Source: "body", Signature: "int32_t(int32_t)"}
	sink := &collectingSink{}
	next := reconcile(context.Background(), map[string]Patch{}, lowerer.Output{Units: []lowerer.Unit{newUnit}},
		map[string]artifact.Paths{}, fakeCompiler(t, ""), nil, sink)

	if _, ok := next["brandNew"]; ok {
		t.Fatalf("expected a newly-appearing reloadable function to never enter known_patches (R3)")
	}
}
