package core

import (
	"errors"
	"testing"
)

type stubPage struct {
	name string
}

type stubFactory struct {
	created map[string]int
	err     error
}

func newStubFactory() *stubFactory {
	return &stubFactory{created: make(map[string]int)}
}

func (f *stubFactory) Create(sourceType string) (Page, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created[sourceType]++
	return &stubPage{name: sourceType}, nil
}

func TestPageCache_CreateOrReuse(t *testing.T) {
	t.Run("Creates And Stores", func(t *testing.T) {
		factory := newStubFactory()
		c := NewPageCache(2)

		page, err := c.CreateOrReuse("app.A", factory)
		if err != nil {
			t.Fatalf("CreateOrReuse failed: %v", err)
		}
		if page == nil {
			t.Fatal("expected a page")
		}
		if c.Len() != 1 {
			t.Errorf("expected 1 cached page, got %d", c.Len())
		}
	})

	t.Run("Duplicate Type Is An Integrity Error", func(t *testing.T) {
		factory := newStubFactory()
		c := NewPageCache(2)

		if _, err := c.CreateOrReuse("app.A", factory); err != nil {
			t.Fatalf("first create failed: %v", err)
		}
		_, err := c.CreateOrReuse("app.A", factory)
		if !errors.Is(err, ErrDuplicateCacheEntry) {
			t.Errorf("expected ErrDuplicateCacheEntry, got %v", err)
		}
		if factory.created["app.A"] != 1 {
			t.Errorf("expected exactly one construction, got %d", factory.created["app.A"])
		}
	})

	t.Run("Evicts Oldest First", func(t *testing.T) {
		factory := newStubFactory()
		c := NewPageCache(2)

		a, _ := c.CreateOrReuse("app.A", factory)
		c.CreateOrReuse("app.B", factory)
		c.CreateOrReuse("app.C", factory)

		if c.Len() != 2 {
			t.Fatalf("expected 2 cached pages, got %d", c.Len())
		}
		if _, _, hit := c.Lookup("app.A", nil); hit {
			t.Error("expected oldest entry app.A to be evicted")
		}
		if _, _, hit := c.Lookup("app.B", nil); !hit {
			t.Error("expected app.B to survive eviction")
		}
		if _, _, hit := c.Lookup("", a); hit {
			t.Error("expected identity lookup of evicted page to miss")
		}
	})

	t.Run("Capacity Zero Never Stores", func(t *testing.T) {
		factory := newStubFactory()
		c := NewPageCache(0)

		first, err := c.CreateOrReuse("app.A", factory)
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		second, err := c.CreateOrReuse("app.A", factory)
		if err != nil {
			t.Fatalf("second create failed: %v", err)
		}
		if first == second {
			t.Error("capacity 0 must create a fresh instance every time")
		}
		if _, _, hit := c.Lookup("app.A", nil); hit {
			t.Error("capacity 0 lookups must always miss")
		}
	})
}

func TestPageCache_Lookup(t *testing.T) {
	factory := newStubFactory()
	c := NewPageCache(3)

	a, _ := c.CreateOrReuse("app.A", factory)
	b, _ := c.CreateOrReuse("app.B", factory)

	t.Run("By Type", func(t *testing.T) {
		page, matched, hit := c.Lookup("app.A", nil)
		if !hit || page != a || matched != "app.A" {
			t.Errorf("expected hit on app.A, got (%v, %q, %v)", page, matched, hit)
		}
	})

	t.Run("By Identity", func(t *testing.T) {
		page, matched, hit := c.Lookup("", b)
		if !hit || page != b || matched != "app.B" {
			t.Errorf("expected identity hit on app.B, got (%v, %q, %v)", page, matched, hit)
		}
	})

	t.Run("Miss", func(t *testing.T) {
		if _, _, hit := c.Lookup("app.Z", nil); hit {
			t.Error("expected miss for unknown type")
		}
		if _, _, hit := c.Lookup("", &stubPage{name: "stranger"}); hit {
			t.Error("expected miss for foreign instance")
		}
	})
}

func TestPageCache_TryAdd(t *testing.T) {
	c := NewPageCache(2)
	page := &stubPage{name: "app.A"}

	c.TryAdd("app.A", page)
	c.TryAdd("app.A", &stubPage{name: "app.A"}) // same type, discarded
	c.TryAdd("app.Other", page)                 // same instance, discarded

	if c.Len() != 1 {
		t.Errorf("expected idempotent registration to keep 1 entry, got %d", c.Len())
	}
	got, _, hit := c.Lookup("app.A", nil)
	if !hit || got != page {
		t.Error("expected the originally registered instance")
	}
}

func TestPageCache_Clear(t *testing.T) {
	factory := newStubFactory()
	c := NewPageCache(2)
	c.CreateOrReuse("app.A", factory)

	c.Clear()

	if c.Len() != 0 {
		t.Errorf("expected empty cache, got %d entries", c.Len())
	}
}
