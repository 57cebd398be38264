package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

var errUpstream = errors.New("upstream 503")
var errNotFound = errors.New("not published")

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	t.Parallel()

	b := NewBreaker("nflverse", CircuitBreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: time.Minute, HalfOpenMaxReq: 1}, nil, nil)
	fail := func() (any, error) { return nil, errUpstream }

	for i := 0; i < 2; i++ {
		if _, err := b.Execute(fail); !errors.Is(err, errUpstream) {
			t.Fatalf("attempt %d: expected upstream error, got %v", i, err)
		}
	}

	if _, err := b.Execute(func() (any, error) { return "ok", nil }); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open, got %v", err)
	}
	if state := b.State(); state != "open" {
		t.Fatalf("expected open state, got %s", state)
	}
}

func TestBreaker_IgnoresNonFailures(t *testing.T) {
	t.Parallel()

	isFailure := func(err error) bool { return !errors.Is(err, errNotFound) }
	b := NewBreaker("cfbd", CircuitBreakerConfig{Enabled: true, FailureThreshold: 1}, isFailure, nil)

	for i := 0; i < 3; i++ {
		if _, err := b.Execute(func() (any, error) { return nil, errNotFound }); !errors.Is(err, errNotFound) {
			t.Fatalf("expected not found passthrough, got %v", err)
		}
	}
	if state := b.State(); state != "closed" {
		t.Fatalf("expected closed state, got %s", state)
	}
}

func TestBreaker_DisabledPassesThrough(t *testing.T) {
	t.Parallel()

	b := NewBreaker("blob", CircuitBreakerConfig{Enabled: false, FailureThreshold: 1}, nil, nil)
	for i := 0; i < 3; i++ {
		_, _ = b.Execute(func() (any, error) { return nil, errUpstream })
	}
	out, err := b.Execute(func() (any, error) { return "ok", nil })
	if err != nil || out != "ok" {
		t.Fatalf("expected passthrough, got out=%v err=%v", out, err)
	}
}

func TestGroup_Do(t *testing.T) {
	var g Group
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			_, err, _ := g.Do("stats:2024:3", func() (any, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}
