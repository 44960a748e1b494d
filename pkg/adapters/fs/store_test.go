package fs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleState = "app.B|2\n1\napp.A|1\n0\n"

func TestStoreSaveLoad(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		store := NewStore(filepath.Join(t.TempDir(), "nav"), nil)

		if err := store.Save(sampleState); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		got, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if got != sampleState {
			t.Errorf("Load() = %q, want %q", got, sampleState)
		}
	})

	t.Run("Missing File Starts Fresh", func(t *testing.T) {
		store := NewStore(filepath.Join(t.TempDir(), "never-created"), nil)

		got, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if got != "" {
			t.Errorf("Load() = %q, want empty", got)
		}
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		store := NewStore(t.TempDir(), nil)

		if err := store.Save(sampleState); err != nil {
			t.Fatal(err)
		}
		if err := store.Save("|\n0\n0\n"); err != nil {
			t.Fatal(err)
		}
		got, err := store.Load()
		if err != nil {
			t.Fatal(err)
		}
		if got != "|\n0\n0\n" {
			t.Errorf("Load() = %q after overwrite", got)
		}
	})

	t.Run("No Temp Files Left Behind", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStore(dir, nil)

		if err := store.Save(sampleState); err != nil {
			t.Fatal(err)
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		for _, de := range entries {
			if strings.HasPrefix(de.Name(), TempFilePrefix) {
				t.Errorf("temp file left behind: %s", de.Name())
			}
		}
	})
}

func TestStoreSnapshots(t *testing.T) {
	t.Run("Save and Load", func(t *testing.T) {
		store := NewStore(t.TempDir(), nil)

		if err := store.SaveSnapshot("before-upgrade", sampleState); err != nil {
			t.Fatalf("SaveSnapshot() error = %v", err)
		}
		got, err := store.LoadSnapshot("before-upgrade")
		if err != nil {
			t.Fatalf("LoadSnapshot() error = %v", err)
		}
		if got != sampleState {
			t.Errorf("LoadSnapshot() = %q, want %q", got, sampleState)
		}
	})

	t.Run("Missing Snapshot Is an Error", func(t *testing.T) {
		store := NewStore(t.TempDir(), nil)

		if _, err := store.LoadSnapshot("absent"); err == nil {
			t.Error("expected an error for a missing snapshot")
		}
	})

	t.Run("Invalid Names Rejected", func(t *testing.T) {
		store := NewStore(t.TempDir(), nil)

		for _, name := range []string{"", "a/b", `a\b`, "../escape"} {
			if err := store.SaveSnapshot(name, sampleState); err == nil {
				t.Errorf("SaveSnapshot(%q) accepted an invalid name", name)
			}
		}
	})

	t.Run("List Excludes Live State", func(t *testing.T) {
		store := NewStore(t.TempDir(), nil)

		if err := store.Save(sampleState); err != nil {
			t.Fatal(err)
		}
		for _, name := range []string{"session-1", "session-2", "manual"} {
			if err := store.SaveSnapshot(name, sampleState); err != nil {
				t.Fatal(err)
			}
		}

		names, err := store.ListSnapshots("")
		if err != nil {
			t.Fatalf("ListSnapshots() error = %v", err)
		}
		want := []string{"manual", "session-1", "session-2"}
		if len(names) != len(want) {
			t.Fatalf("ListSnapshots() = %v, want %v", names, want)
		}
		for i := range want {
			if names[i] != want[i] {
				t.Errorf("ListSnapshots()[%d] = %q, want %q", i, names[i], want[i])
			}
		}
	})

	t.Run("List With Pattern", func(t *testing.T) {
		store := NewStore(t.TempDir(), nil)

		for _, name := range []string{"session-1", "session-2", "manual"} {
			if err := store.SaveSnapshot(name, sampleState); err != nil {
				t.Fatal(err)
			}
		}

		names, err := store.ListSnapshots("session-*")
		if err != nil {
			t.Fatalf("ListSnapshots() error = %v", err)
		}
		if len(names) != 2 || names[0] != "session-1" || names[1] != "session-2" {
			t.Errorf("ListSnapshots(session-*) = %v", names)
		}
	})

	t.Run("List Missing Dir", func(t *testing.T) {
		store := NewStore(filepath.Join(t.TempDir(), "nope"), nil)

		names, err := store.ListSnapshots("*")
		if err != nil {
			t.Fatalf("ListSnapshots() error = %v", err)
		}
		if names != nil {
			t.Errorf("ListSnapshots() = %v, want nil", names)
		}
	})

	t.Run("Prune", func(t *testing.T) {
		store := NewStore(t.TempDir(), nil)

		for _, name := range []string{"keep-me", "drop-1", "drop-2"} {
			if err := store.SaveSnapshot(name, sampleState); err != nil {
				t.Fatal(err)
			}
		}
		if err := store.Save(sampleState); err != nil {
			t.Fatal(err)
		}

		if err := store.Prune(map[string]bool{"keep-me": true}); err != nil {
			t.Fatalf("Prune() error = %v", err)
		}

		names, err := store.ListSnapshots("*")
		if err != nil {
			t.Fatal(err)
		}
		if len(names) != 1 || names[0] != "keep-me" {
			t.Errorf("ListSnapshots() after prune = %v, want [keep-me]", names)
		}
		// The live state file survives pruning.
		if got, err := store.Load(); err != nil || got != sampleState {
			t.Errorf("Load() after prune = %q, %v", got, err)
		}
	})
}
