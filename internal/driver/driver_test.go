package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"hotreload/internal/driver"
)

const program = `
class Counter extends HotReloadProgram {
  @reload
  scale(a: number): number {
    return a * 1;
  }

  main(): void {
    var i: number = 0;
    print(scale(i));
  }
}`

// fakeCXX writes a shell script standing in for the native toolchain: for
// an executable build it emits a tiny runnable shell script (so Launch has
// something real to exec), for a shared-object build it emits a marker
// file, matching whatever -o path it was given.
func fakeCXX(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "fake-cxx.sh")
	script := `#!/bin/sh
out=""
shared=0
prev=""
for a in "$@"; do
  if [ "$prev" = "-o" ]; then out="$a"; fi
  if [ "$a" = "-shared" ]; then shared=1; fi
  prev="$a"
done
if [ "$shared" = "1" ]; then
  echo fake-object > "$out"
else
  printf '#!/bin/sh\nexit 0\n' > "$out"
  chmod +x "$out"
fi
`
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write fake cxx: %v", err)
	}
	return path
}

func TestRunBuildsAndLaunchesProgram(t *testing.T) {
	t.Setenv("CXX", fakeCXX(t))

	dir := t.TempDir()
	src := filepath.Join(dir, "counter.hr")
	if err := os.WriteFile(src, []byte(program), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := driver.Run(ctx, driver.Request{SourcePath: src, MaxDiagnostics: 32})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	defer res.Manager.Close()

	if err := res.Program.Wait(); err != nil {
		t.Fatalf("expected launched program to exit cleanly, got: %v", err)
	}
	if _, err := os.Stat(res.Manager.MainExe); err != nil {
		t.Fatalf("expected main executable to exist: %v", err)
	}
}

func TestRunRejectsMalformedProgram(t *testing.T) {
	t.Setenv("CXX", fakeCXX(t))

	dir := t.TempDir()
	src := filepath.Join(dir, "bad.hr")
	if err := os.WriteFile(src, []byte("not a valid program"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	_, err := driver.Run(context.Background(), driver.Request{SourcePath: src, MaxDiagnostics: 32})
	if err == nil {
		t.Fatal("expected Run to reject a malformed DSL source (S5)")
	}
}
