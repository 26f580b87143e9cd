package session

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

func TestMemoryRegistryLifecycle(t *testing.T) {
	ctx := context.Background()
	reg := NewMemoryRegistry()

	tracked, err := reg.Tracked(ctx, "somchai")
	if err != nil || tracked {
		t.Fatalf("fresh account: tracked=%v err=%v, want untracked", tracked, err)
	}

	if err := reg.Register(ctx, "somchai", "tok-1"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register(ctx, "somchai", "tok-2"); err != nil {
		t.Fatalf("register second session: %v", err)
	}

	for _, tok := range []string{"tok-1", "tok-2"} {
		live, err := reg.IsLive(ctx, "somchai", tok)
		if err != nil || !live {
			t.Fatalf("IsLive(%s)=%v err=%v, want live", tok, live, err)
		}
	}

	removed, err := reg.Revoke(ctx, "somchai", "tok-1")
	if err != nil || !removed {
		t.Fatalf("revoke: removed=%v err=%v", removed, err)
	}
	if live, _ := reg.IsLive(ctx, "somchai", "tok-1"); live {
		t.Fatal("tok-1 still live after revoke")
	}
	if live, _ := reg.IsLive(ctx, "somchai", "tok-2"); !live {
		t.Fatal("tok-2 revoked collaterally")
	}
}

func TestMemoryRegistryRevokeAbsentToken(t *testing.T) {
	ctx := context.Background()
	reg := NewMemoryRegistry()

	removed, err := reg.Revoke(ctx, "somchai", "ghost")
	if err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if removed {
		t.Fatal("expected removed=false for token never registered")
	}
}

func TestMemoryRegistryStaysTrackedAfterLastRevoke(t *testing.T) {
	ctx := context.Background()
	reg := NewMemoryRegistry()

	if err := reg.Register(ctx, "somchai", "tok-1"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := reg.Revoke(ctx, "somchai", "tok-1"); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	tracked, err := reg.Tracked(ctx, "somchai")
	if err != nil || !tracked {
		t.Fatalf("tracked=%v err=%v, want tracked after logout of last session", tracked, err)
	}
	if live, _ := reg.IsLive(ctx, "somchai", "tok-1"); live {
		t.Fatal("revoked token reported live")
	}
}

func TestMemoryRegistryResetAllClearsTracking(t *testing.T) {
	ctx := context.Background()
	reg := NewMemoryRegistry()

	_ = reg.Register(ctx, "somchai", "tok-1")
	_ = reg.Register(ctx, "somying", "tok-2")

	if err := reg.ResetAll(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	for _, username := range []string{"somchai", "somying"} {
		if tracked, _ := reg.Tracked(ctx, username); tracked {
			t.Fatalf("%s still tracked after reset", username)
		}
	}
}

func TestMemoryRegistryConcurrentLoginLogout(t *testing.T) {
	ctx := context.Background()
	reg := NewMemoryRegistry()

	const sessions = 64
	var wg sync.WaitGroup
	for i := 0; i < sessions; i++ {
		i := i
		tok := fmt.Sprintf("tok-%03d", i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := reg.Register(ctx, "somchai", tok); err != nil {
				t.Errorf("register %s: %v", tok, err)
				return
			}
			if i%2 == 0 {
				if removed, err := reg.Revoke(ctx, "somchai", tok); err != nil || !removed {
					t.Errorf("revoke %s: removed=%v err=%v", tok, removed, err)
				}
			}
		}()
	}
	wg.Wait()

	live := 0
	for i := 0; i < sessions; i++ {
		if ok, _ := reg.IsLive(ctx, "somchai", fmt.Sprintf("tok-%03d", i)); ok {
			live++
		}
	}
	if live != sessions/2 {
		t.Fatalf("expected %d live sessions, got %d", sessions/2, live)
	}
}
