package network

import (
	"errors"
	"testing"
	"time"
)

func TestRotatorRoundRobin(t *testing.T) {
	r, err := NewRotator([]string{"http://a:1", "http://b:2"}, time.Minute)
	if err != nil {
		t.Fatalf("NewRotator() error = %v", err)
	}

	var got []string
	for i := 0; i < 3; i++ {
		proxy, err := r.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		got = append(got, proxy.Host)
	}
	want := []string{"a:1", "b:2", "a:1"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Next() sequence = %v, want %v", got, want)
		}
	}
}

func TestRotatorBansBlockedProxies(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	r, _ := NewRotator([]string{"http://a:1", "http://b:2"}, 10*time.Minute)
	r.now = func() time.Time { return now }

	first, _ := r.Next()
	r.Report(first, 200)
	if r.Available() != 2 {
		t.Fatalf("a 200 must not ban a proxy")
	}

	r.Report(first, 429)
	if r.Available() != 1 {
		t.Fatalf("Available() = %d, want 1", r.Available())
	}
	for i := 0; i < 3; i++ {
		proxy, err := r.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		if proxy.String() == first.String() {
			t.Fatalf("banned proxy %s handed out", proxy)
		}
	}

	second, _ := r.Next()
	r.Report(second, 403)
	if _, err := r.Next(); !errors.Is(err, ErrNoProxies) {
		t.Fatalf("expected ErrNoProxies with every proxy banned, got %v", err)
	}

	now = now.Add(11 * time.Minute)
	if r.Available() != 2 {
		t.Fatalf("bans should expire, Available() = %d", r.Available())
	}
}

func TestRotatorEmpty(t *testing.T) {
	r, _ := NewRotator(nil, time.Minute)
	if _, err := r.Next(); !errors.Is(err, ErrNoProxies) {
		t.Fatalf("expected ErrNoProxies, got %v", err)
	}
}

func TestRetryable(t *testing.T) {
	for _, status := range []int{408, 429, 500, 502, 503, 504} {
		if !Retryable(status) {
			t.Fatalf("expected %d to be retryable", status)
		}
	}
	for _, status := range []int{200, 301, 403, 404} {
		if Retryable(status) {
			t.Fatalf("expected %d not to be retryable", status)
		}
	}
}
