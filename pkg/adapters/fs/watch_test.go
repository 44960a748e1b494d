package fs

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestStoreWatch(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan string, 4)
	if err := store.Watch(ctx, func(state string) { changes <- state }); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	if err := store.Save(sampleState); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-changes:
		if got != sampleState {
			t.Errorf("change notification = %q, want %q", got, sampleState)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the change notification")
	}
}

func TestStoreWatchMissingDir(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent"), nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := store.Watch(ctx, func(string) {}); err == nil {
		t.Error("expected an error watching a missing directory")
	}
}
