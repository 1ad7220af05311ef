package artifact_test

import (
	"os"
	"testing"

	"hotreload/internal/artifact"
)

func TestPathsForIsStableAcrossCalls(t *testing.T) {
	m, err := artifact.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer m.Close()

	p1 := m.PathsFor("scale")
	p2 := m.PathsFor("scale")
	if p1 != p2 {
		t.Fatalf("PathsFor returned different paths across calls: %+v vs %+v", p1, p2)
	}
	if p1.Src == p1.Lib || p1.Lib == p1.Copy || p1.Copy == p1.Lock {
		t.Fatalf("expected four distinct paths, got %+v", p1)
	}
}

func TestPathsForDistinctUnitsDoNotCollide(t *testing.T) {
	m, err := artifact.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer m.Close()

	a := m.PathsFor("scale")
	b := m.PathsFor("shift")
	if a == b {
		t.Fatalf("expected distinct paths for distinct units, got %+v for both", a)
	}
}

func TestCloseRemovesRunDir(t *testing.T) {
	m, err := artifact.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	dir := m.RunDir
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("expected run dir to be removed, stat err = %v", err)
	}
}

func TestDiskCachePutGetRoundTrip(t *testing.T) {
	m, err := artifact.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer m.Close()

	cache, err := artifact.OpenDiskCache(m.RunDir)
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}

	rec := artifact.BodyRecord{Name: "scale", Signature: "int32_t(int32_t)", BodyHash: "abc123"}
	if err := cache.Put("scale", rec); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok, err := cache.Get("scale")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got.Signature != rec.Signature || got.BodyHash != rec.BodyHash {
		t.Fatalf("got %+v, want %+v", got, rec)
	}

	if _, ok, err := cache.Get("missing"); ok || err != nil {
		t.Fatalf("expected miss for unknown key, got ok=%v err=%v", ok, err)
	}
}
