package storage

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/phasorsim/internal/phasor"
)

func newSignal(t *testing.T) *phasor.Signal {
	t.Helper()
	sig, err := phasor.New(1.5, 0.2, 2*math.Pi, math.Pi)
	if err != nil {
		t.Fatal(err)
	}
	_ = sig.SetCurrentTime(2.5)
	_ = sig.SetCurrentLoc(0.75)
	return sig
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	sig := newSignal(t)
	id, err := st.Save("test", sig)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if id == "" {
		t.Error("expected non-empty id")
	}

	meta, err := st.Load(id)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Name != "test" || meta.Magnitude != 1.5 || meta.Beta != 2*math.Pi {
		t.Errorf("unexpected metadata: %+v", meta)
	}
	if len(meta.SampleLocs) != phasor.DefaultSpatialSamples {
		t.Errorf("expected %d sample locations, got %d", phasor.DefaultSpatialSamples, len(meta.SampleLocs))
	}

	restored, err := meta.Signal()
	if err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if restored.CurrentTimeIndex() != sig.CurrentTimeIndex() || restored.CurrentLocIndex() != sig.CurrentLocIndex() {
		t.Error("restored cursor differs")
	}
	if restored.CurrentValue() != sig.CurrentValue() {
		t.Errorf("restored value = %v, want %v", restored.CurrentValue(), sig.CurrentValue())
	}
}

func TestStoreLoadSamples(t *testing.T) {
	st := New(t.TempDir())
	sig := newSignal(t)
	id, err := st.Save("samples", sig)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	times, series, err := st.LoadSamples(id)
	if err != nil {
		t.Fatalf("load samples failed: %v", err)
	}
	if len(times) != phasor.GridSize {
		t.Errorf("expected %d times, got %d", phasor.GridSize, len(times))
	}
	if len(series) != phasor.DefaultSpatialSamples {
		t.Fatalf("expected %d series, got %d", phasor.DefaultSpatialSamples, len(series))
	}

	want := sig.SampleTimeSeries()
	for k := range series {
		for i := 0; i < len(times); i += 111 {
			if math.Abs(series[k][i]-want[k][i]) > 1e-6 {
				t.Fatalf("series[%d][%d] = %v, want %v", k, i, series[k][i], want[k][i])
			}
		}
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	sig := newSignal(t)
	for _, name := range []string{"a", "b"} {
		if _, err := st.Save(name, sig); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}
	if err := os.MkdirAll(filepath.Join(tmpDir, "junk"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	id, err := st.Save("test", newSignal(t))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	for _, name := range []string{metadataFile, samplesFile} {
		if _, err := os.Stat(filepath.Join(tmpDir, id, name)); os.IsNotExist(err) {
			t.Errorf("%s not created", name)
		}
	}
}

func TestStoreLoadMissing(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope"); err == nil {
		t.Error("expected error for missing snapshot")
	}
	if _, _, err := st.LoadSamples("nope"); err == nil {
		t.Error("expected error for missing samples")
	}
}

func TestStoreRejectsEscapingNames(t *testing.T) {
	root := t.TempDir()
	st := New(filepath.Join(root, "data"))
	sig := newSignal(t)

	for _, name := range []string{"", ".", "..", "../escaped", "a/b", `a\b`, "/abs"} {
		if id, err := st.Save(name, sig); !errors.Is(err, ErrInvalidName) {
			t.Errorf("Save(%q) = %q, %v; want ErrInvalidName", name, id, err)
		}
		if _, err := st.Load(name); !errors.Is(err, ErrInvalidName) {
			t.Errorf("Load(%q) err = %v; want ErrInvalidName", name, err)
		}
		if _, _, err := st.LoadSamples(name); !errors.Is(err, ErrInvalidName) {
			t.Errorf("LoadSamples(%q) err = %v; want ErrInvalidName", name, err)
		}
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() != "data" {
			t.Errorf("snapshot escaped the store: %s", e.Name())
		}
	}
}
