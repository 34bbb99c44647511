package store

import (
	"bytes"
	"path/filepath"
	"testing"
)

func openStore(t *testing.T) *SQLite {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crewsync.db")
	s, err := New(path)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadEmptyStore(t *testing.T) {
	s := openStore(t)

	data, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if data != nil {
		t.Errorf("Load on empty store = %q, want nil", data)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openStore(t)

	doc := []byte(`{"personalInfo":{"name":"Ana"}}`)
	if err := s.Save(doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(got, doc) {
		t.Errorf("Load = %q, want %q", got, doc)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := openStore(t)

	if err := s.Save([]byte(`{"v":1}`)); err != nil {
		t.Fatal(err)
	}
	if err := s.Save([]byte(`{"v":2}`)); err != nil {
		t.Fatal(err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"v":2}` {
		t.Errorf("Load after overwrite = %q, want {\"v\":2}", got)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crewsync.db")

	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save([]byte(`{"v":1}`)); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = s.Close() }()

	got, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"v":1}` {
		t.Errorf("Load after reopen = %q, want {\"v\":1}", got)
	}
}

func TestNewCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "crewsync.db")

	s, err := New(path)
	if err != nil {
		t.Fatalf("New with missing parent dirs: %v", err)
	}
	_ = s.Close()
}
