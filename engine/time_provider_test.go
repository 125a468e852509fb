package engine

import (
	"sync"
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := provider.Now()

	if d := t2.Sub(t1); d < 5*time.Millisecond {
		t.Errorf("elapsed %v across a 5ms sleep", d)
	}
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if now := mock.Now(); !now.Equal(start) {
		t.Errorf("initial time = %v, want %v", now, start)
	}

	next := start.Add(24 * time.Hour)
	mock.SetTime(next)
	if now := mock.Now(); !now.Equal(next) {
		t.Errorf("after SetTime = %v, want %v", now, next)
	}

	got := mock.Advance(50 * time.Millisecond)
	want := next.Add(50 * time.Millisecond)
	if !got.Equal(want) || !mock.Now().Equal(want) {
		t.Errorf("Advance returned %v, Now %v, want %v", got, mock.Now(), want)
	}
}

func TestMockTimeProviderConcurrentAdvance(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				mock.Advance(time.Millisecond)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = mock.Now()
			}
		}()
	}
	wg.Wait()

	if want := start.Add(250 * time.Millisecond); !mock.Now().Equal(want) {
		t.Errorf("time after concurrent advances = %v, want %v", mock.Now(), want)
	}
}

var (
	_ TimeProvider = (*MonotonicTimeProvider)(nil)
	_ TimeProvider = (*MockTimeProvider)(nil)
)
