// Reelmatch - Movie Recommendations with Poster Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/reelmatch/internal/metrics"
)

func TestMemo_FillsOnce(t *testing.T) {
	t.Parallel()

	m := NewMemo[string]("memo_fills_once", 10, 0)
	var calls int32
	fill := func() (string, time.Duration, error) {
		atomic.AddInt32(&calls, 1)
		return "value", UseDefaultTTL, nil
	}

	v, hit, err := m.Do("k", fill)
	if err != nil || v != "value" || hit {
		t.Fatalf("first Do = (%q, %v, %v), want (value, false, nil)", v, hit, err)
	}
	v, hit, err = m.Do("k", fill)
	if err != nil || v != "value" || !hit {
		t.Fatalf("second Do = (%q, %v, %v), want (value, true, nil)", v, hit, err)
	}
	if calls != 1 {
		t.Errorf("fill called %d times, want 1", calls)
	}

	if got := testutil.ToFloat64(metrics.CacheHits.WithLabelValues("memo_fills_once")); got != 1 {
		t.Errorf("memo hits = %v, want 1", got)
	}
}

func TestMemo_SingleFlight(t *testing.T) {
	t.Parallel()

	m := NewMemo[int]("memo_single_flight", 10, 0)
	var calls int32
	release := make(chan struct{})

	fill := func() (int, time.Duration, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return 42, UseDefaultTTL, nil
	}

	const callers = 10
	var wg sync.WaitGroup
	results := make([]int, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, _, err := m.Do("same", fill)
			if err != nil {
				t.Errorf("Do() error = %v", err)
			}
			results[i] = v
		}(i)
	}

	// Give the callers a moment to pile up on the in-flight fill.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if calls != 1 {
		t.Errorf("fill called %d times, want 1", calls)
	}
	for i, v := range results {
		if v != 42 {
			t.Errorf("caller %d got %d, want 42", i, v)
		}
	}
}

func TestMemo_ErrorsNotCached(t *testing.T) {
	t.Parallel()

	m := NewMemo[string]("memo_errors", 10, 0)
	boom := errors.New("boom")

	if _, _, err := m.Do("k", func() (string, time.Duration, error) { return "", 0, boom }); !errors.Is(err, boom) {
		t.Fatalf("Do() error = %v, want boom", err)
	}

	v, hit, err := m.Do("k", func() (string, time.Duration, error) { return "ok", UseDefaultTTL, nil })
	if err != nil || v != "ok" || hit {
		t.Errorf("retry Do = (%q, %v, %v), want (ok, false, nil)", v, hit, err)
	}
}

func TestMemo_CustomTTL(t *testing.T) {
	t.Parallel()

	m := NewMemo[string]("memo_custom_ttl", 10, time.Hour)
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	m.lru.now = clock.Now

	_, _, _ = m.Do("neg", func() (string, time.Duration, error) { return "err", time.Second, nil })
	_, _, _ = m.Do("pos", func() (string, time.Duration, error) { return "ok", UseDefaultTTL, nil })

	clock.Advance(2 * time.Second)

	if _, ok := m.Get("neg"); ok {
		t.Error("short TTL entry should have expired")
	}
	if _, ok := m.Get("pos"); !ok {
		t.Error("default TTL entry should be present")
	}

	m.Forget("pos")
	if _, ok := m.Get("pos"); ok {
		t.Error("Forget should drop the entry")
	}
}

func TestMemo_CleanupExpired(t *testing.T) {
	t.Parallel()

	m := NewMemo[int]("memo_cleanup", 10, time.Minute)
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	m.lru.now = clock.Now

	_, _, _ = m.Do("a", func() (int, time.Duration, error) { return 1, time.Second, nil })
	_, _, _ = m.Do("b", func() (int, time.Duration, error) { return 2, UseDefaultTTL, nil })

	clock.Advance(2 * time.Second)

	if removed := m.CleanupExpired(); removed != 1 {
		t.Errorf("CleanupExpired() = %d, want 1", removed)
	}
	if got := m.Stats().Size; got != 1 {
		t.Errorf("Size = %d, want 1", got)
	}
}
