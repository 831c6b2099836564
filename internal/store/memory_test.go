package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ShlokD/guess-food/internal/game"
	"github.com/ShlokD/guess-food/internal/recipes"
	"github.com/ShlokD/guess-food/internal/shell"
)

func newSession(id string) *shell.App {
	cat, _ := recipes.NewCatalog([]byte(`{"meals":[]}`))
	return shell.New(id, cat, game.Options{})
}

func TestSaveGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	a := newSession("abc")
	if err := s.Save(ctx, a); err != nil {
		t.Fatal(err)
	}
	got, err := s.Get(ctx, "abc")
	if err != nil || got != a {
		t.Fatalf("Get = %v, %v", got, err)
	}
	if _, err := s.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v", err)
	}
}

func TestSweepEvictsIdleSessions(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_ = s.Save(ctx, newSession("old"))

	cutoff := time.Now().Add(time.Millisecond)
	time.Sleep(2 * time.Millisecond)
	fresh := newSession("fresh")
	_ = s.Save(ctx, fresh)

	if n := s.Sweep(ctx, cutoff); n != 1 {
		t.Fatalf("swept %d", n)
	}
	if _, err := s.Get(ctx, "old"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("old session survived: %v", err)
	}
	if _, err := s.Get(ctx, "fresh"); err != nil {
		t.Fatalf("fresh session evicted: %v", err)
	}
}

func TestRunSweeperStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		RunSweeper(ctx, NewMemoryStore(), time.Minute, time.Millisecond)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop")
	}
}
