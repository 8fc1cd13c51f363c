package service

import (
	"sync"
	"testing"
	"time"
)

func TestNewShareToken(t *testing.T) {
	now := time.Now().UTC()

	a := newShareToken(now)
	b := newShareToken(now)

	if len(a) != 26 || len(b) != 26 {
		t.Fatalf("ULID token length = %d/%d, want 26", len(a), len(b))
	}

	if a == b {
		t.Fatal("tokens generated in the same millisecond must differ")
	}

	// 单调熵源保证同一毫秒内的 ULID 递增
	if a >= b {
		t.Fatalf("tokens should be monotonic: %q >= %q", a, b)
	}
}

func TestNewShareTokenConcurrentUnique(t *testing.T) {
	const goroutines, perGoroutine = 8, 64

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[string]struct{}, goroutines*perGoroutine)
	)

	for g := 0; g < goroutines; g++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			local := make([]string, 0, perGoroutine)
			for i := 0; i < perGoroutine; i++ {
				local = append(local, newShareToken(time.Now().UTC()))
			}

			mu.Lock()
			for _, tok := range local {
				seen[tok] = struct{}{}
			}
			mu.Unlock()
		}()
	}

	wg.Wait()

	if len(seen) != goroutines*perGoroutine {
		t.Fatalf("unique tokens = %d, want %d", len(seen), goroutines*perGoroutine)
	}
}

func TestShareExpired(t *testing.T) {
	now := time.Now().UTC()

	if shareExpired(now, nil) {
		t.Fatal("nil expiry never expires")
	}

	future := now.Add(time.Hour)
	if shareExpired(now, &future) {
		t.Fatal("future expiry should not be expired")
	}

	past := now.Add(-time.Second)
	if !shareExpired(now, &past) {
		t.Fatal("past expiry should be expired")
	}

	// 到期时刻视为已过期
	if !shareExpired(now, &now) {
		t.Fatal("exact expiry instant should be expired")
	}
}

func TestCacheTTLFromExpire(t *testing.T) {
	if got := cacheTTLFromExpire(nil); got != shareCacheDefaultTTL {
		t.Fatalf("nil expiry TTL = %v, want %v", got, shareCacheDefaultTTL)
	}

	far := time.Now().Add(48 * time.Hour)
	if got := cacheTTLFromExpire(&far); got != shareCacheMaxTTL {
		t.Fatalf("far expiry TTL = %v, want cap %v", got, shareCacheMaxTTL)
	}

	past := time.Now().Add(-time.Minute)
	if got := cacheTTLFromExpire(&past); got != 0 {
		t.Fatalf("past expiry TTL = %v, want 0", got)
	}

	near := time.Now().Add(5 * time.Minute)
	got := cacheTTLFromExpire(&near)

	if got <= 4*time.Minute || got > 5*time.Minute {
		t.Fatalf("near expiry TTL = %v, want about 5m", got)
	}
}
