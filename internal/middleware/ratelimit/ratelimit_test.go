package ratelimit

import (
	"testing"
	"time"
)

func TestAllowWithinLimit(t *testing.T) {
	rl := NewLimiter(Config{RequestsPerMinute: 3, CleanupInterval: time.Hour})
	defer rl.Stop()

	for i := 0; i < 3; i++ {
		if !rl.Allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow("1.2.3.4") {
		t.Fatal("request over the limit should be denied")
	}

	// Other clients are tracked independently
	if !rl.Allow("5.6.7.8") {
		t.Fatal("different client should be allowed")
	}
	if rl.ActiveClients() != 2 {
		t.Fatalf("ActiveClients=%d, want 2", rl.ActiveClients())
	}
}

func TestCounterResetsAfterWindow(t *testing.T) {
	rl := NewLimiter(Config{RequestsPerMinute: 1, CleanupInterval: time.Hour})
	defer rl.Stop()

	if !rl.Allow("1.2.3.4") {
		t.Fatal("first request should be allowed")
	}
	if rl.Allow("1.2.3.4") {
		t.Fatal("second request should be denied")
	}

	// Age the entry past the one-minute window
	rl.mu.Lock()
	rl.clients["1.2.3.4"].lastRequest = time.Now().Add(-2 * time.Minute)
	rl.mu.Unlock()

	if !rl.Allow("1.2.3.4") {
		t.Fatal("request after window reset should be allowed")
	}
}

func TestCleanupRemovesStaleEntries(t *testing.T) {
	rl := NewLimiter(DefaultConfig())
	defer rl.Stop()

	rl.Allow("stale")
	rl.Allow("fresh")

	rl.mu.Lock()
	rl.clients["stale"].lastRequest = time.Now().Add(-20 * time.Minute)
	rl.mu.Unlock()

	rl.cleanupStaleEntries()

	if rl.ActiveClients() != 1 {
		t.Fatalf("ActiveClients=%d, want 1", rl.ActiveClients())
	}
}

func TestStopIsIdempotent(t *testing.T) {
	rl := NewLimiter(DefaultConfig())
	rl.Stop()
	rl.Stop()
}
