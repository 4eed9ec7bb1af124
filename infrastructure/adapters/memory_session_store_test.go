package adapters

import (
	"context"
	"errors"
	"podcast-generator/domain"
	"testing"
	"time"
)

func TestMemorySessionStore_BusyGuard(t *testing.T) {
	store := NewMemorySessionStore()

	if err := store.TryBegin("s1"); err != nil {
		t.Fatalf("first TryBegin failed: %v", err)
	}
	if err := store.TryBegin("s1"); !errors.Is(err, domain.ErrGenerationInProgress) {
		t.Fatalf("expected ErrGenerationInProgress, got %v", err)
	}
	if !store.Get("s1").Busy {
		t.Error("session should be busy")
	}

	session := store.Get("s1")
	session.Topic = "space travel"
	store.Complete(session)

	stored := store.Get("s1")
	if stored.Busy || stored.Topic != "space travel" {
		t.Errorf("stored session = %+v", stored)
	}
	if err := store.TryBegin("s1"); err != nil {
		t.Errorf("TryBegin after Complete failed: %v", err)
	}
}

func TestMemorySessionStore_GetUnknown(t *testing.T) {
	store := NewMemorySessionStore()
	session := store.Get("new")
	if session.ID != "new" || session.Generation.State != domain.IdleState || session.Generation.Script != nil {
		t.Errorf("unexpected fresh session: %+v", session)
	}
}

func TestMemorySessionStore_Evict(t *testing.T) {
	store := NewMemorySessionStore()

	old := *domain.NewSession("old")
	old.UpdatedAt = time.Now().Add(-3 * time.Hour)
	store.Complete(old)
	store.Complete(*domain.NewSession("fresh"))

	if removed := store.Evict(time.Hour); removed != 1 {
		t.Errorf("removed %d sessions, want 1", removed)
	}
	if removed := store.Evict(time.Hour); removed != 0 {
		t.Errorf("second eviction removed %d sessions, want 0", removed)
	}
}

func TestMemorySessionStore_RunEvictionStopsWithContext(t *testing.T) {
	store := NewMemorySessionStore()
	idle := store.Get("idle")
	idle.UpdatedAt = time.Now().Add(-time.Hour)
	store.Complete(idle)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan int, 1)
	go func() {
		done <- store.RunEviction(ctx, time.Minute, time.Millisecond)
	}()

	deadline := time.Now().Add(time.Second)
	for {
		store.mu.Lock()
		_, present := store.sessions["idle"]
		store.mu.Unlock()
		if !present {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("idle session was not evicted")
		}
		time.Sleep(time.Millisecond)
	}

	cancel()
	select {
	case removed := <-done:
		if removed != 1 {
			t.Errorf("removed = %d, want 1", removed)
		}
	case <-time.After(time.Second):
		t.Fatal("eviction loop did not stop after cancel")
	}
}
