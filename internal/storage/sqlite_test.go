package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if err := store.Put("playername", []byte(`"Ava"`)); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}

	value, ok, err := store.Get("playername")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if !ok {
		t.Fatal("Get() reported key missing after Put()")
	}
	if string(value) != `"Ava"` {
		t.Errorf("Get() = %q, want %q", value, `"Ava"`)
	}
}

func TestGetMissingKey(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	_, ok, err := store.Get("nope")
	if err != nil {
		t.Fatalf("Get() on missing key returned error: %v", err)
	}
	if ok {
		t.Error("Get() reported a missing key as present")
	}
}

func TestPutOverwrites(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if err := store.Put("darkMode", []byte("false")); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if err := store.Put("darkMode", []byte("true")); err != nil {
		t.Fatalf("second Put() failed: %v", err)
	}

	value, ok, err := store.Get("darkMode")
	if err != nil || !ok {
		t.Fatalf("Get() failed: %v, ok=%v", err, ok)
	}
	if string(value) != "true" {
		t.Errorf("Get() after overwrite = %q, want %q", value, "true")
	}
}

func TestDeleteAndClear(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.Put("a", []byte("1"))
	store.Put("b", []byte("2"))

	if err := store.Delete("a"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, ok, _ := store.Get("a"); ok {
		t.Error("key still present after Delete()")
	}

	// Deleting a missing key is fine.
	if err := store.Delete("a"); err != nil {
		t.Errorf("Delete() of missing key returned error: %v", err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	keys, err := store.Keys()
	if err != nil {
		t.Fatalf("Keys() failed: %v", err)
	}
	if len(keys) != 0 {
		t.Errorf("Keys() after Clear() = %v, want empty", keys)
	}
}

func TestDataSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Put("highscores", []byte(`{"3x3":[]}`)); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	store.Close()

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	value, ok, err := reopened.Get("highscores")
	if err != nil || !ok {
		t.Fatalf("Get() after reopen failed: %v, ok=%v", err, ok)
	}
	if string(value) != `{"3x3":[]}` {
		t.Errorf("Get() after reopen = %q", value)
	}
}

func TestKeysSorted(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.Put("soundOn", []byte("true"))
	store.Put("darkMode", []byte("false"))
	store.Put("playername", []byte(`"Ava"`))

	keys, err := store.Keys()
	if err != nil {
		t.Fatalf("Keys() failed: %v", err)
	}

	want := []string{"darkMode", "playername", "soundOn"}
	if len(keys) != len(want) {
		t.Fatalf("Keys() = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}
