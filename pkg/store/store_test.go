package store

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemoryLoadBeforeSave(t *testing.T) {
	m := NewMemory[payload]()
	_, err := m.Load()
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load before Save = %v, want ErrNotFound", err)
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory[payload]()
	want := payload{Name: "dinner", Count: 3}

	if err := m.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := m.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load = %+v, want %+v", got, want)
	}

	// Later saves overwrite.
	want2 := payload{Name: "party", Count: 1}
	if err := m.Save(want2); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, _ = m.Load()
	if !reflect.DeepEqual(got, want2) {
		t.Errorf("Load after overwrite = %+v, want %+v", got, want2)
	}
}

func TestFileMissingYieldsNotFound(t *testing.T) {
	f := NewFile[payload](filepath.Join(t.TempDir(), "missing.json"))
	_, err := f.Load()
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load missing file = %v, want ErrNotFound", err)
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	f := NewFile[payload](path)
	want := payload{Name: "dinner", Count: 3}

	if err := f.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Fresh store over the same path reads the same value.
	got, err := NewFile[payload](path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load = %+v, want %+v", got, want)
	}
}

func TestFileCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "data.json")
	f := NewFile[payload](path)

	if err := f.Save(payload{Name: "x"}); err != nil {
		t.Fatalf("Save into missing dirs: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not created: %v", err)
	}
}

func TestFileCorruptIsErrorNotNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := NewFile[payload](path).Load()
	if err == nil {
		t.Fatalf("Load of corrupt file succeeded")
	}
	if errors.Is(err, ErrNotFound) {
		t.Errorf("corrupt file reported as ErrNotFound; caller could not tell corruption from first run")
	}
}

func TestFileSliceValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.json")
	f := NewFile[[]payload](path)
	want := []payload{{Name: "a", Count: 1}, {Name: "b", Count: 2}}

	if err := f.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := f.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load = %v, want %v", got, want)
	}
}
