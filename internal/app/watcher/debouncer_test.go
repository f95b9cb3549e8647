package watcher

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Debouncer_Trigger(t *testing.T) {
	var (
		mu            sync.Mutex
		called        int
		receivedFiles []string
	)

	d := NewDebouncer(50*time.Millisecond, func(files []string) {
		mu.Lock()
		defer mu.Unlock()

		called++
		receivedFiles = files
	})
	defer d.Stop()

	d.Trigger("veil.yaml")
	d.Trigger(".env")
	d.Trigger("veil.local.yaml")

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	assert.Equal(t, 1, called)
	assert.Len(t, receivedFiles, 3)
	mu.Unlock()
}

func Test_Debouncer_CoalescesRapidEvents(t *testing.T) {
	var (
		mu        sync.Mutex
		callCount int
	)

	d := NewDebouncer(50*time.Millisecond, func(files []string) {
		mu.Lock()
		defer mu.Unlock()

		callCount++
	})
	defer d.Stop()

	for i := 0; i < 10; i++ {
		d.Trigger("veil.yaml")
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	assert.Equal(t, 1, callCount)
	mu.Unlock()
}

func Test_Debouncer_Stop(t *testing.T) {
	var called bool

	d := NewDebouncer(50*time.Millisecond, func(files []string) {
		called = true
	})

	d.Trigger("veil.yaml")
	d.Stop()

	time.Sleep(100 * time.Millisecond)

	assert.False(t, called)
}

func Test_Debouncer_StopPreventsNewTriggers(t *testing.T) {
	var called bool

	d := NewDebouncer(50*time.Millisecond, func(files []string) {
		called = true
	})

	d.Stop()
	d.Trigger("veil.yaml")

	time.Sleep(100 * time.Millisecond)

	assert.False(t, called)
}

func Test_Debouncer_MultipleCallbacks(t *testing.T) {
	var (
		mu        sync.Mutex
		callCount int
	)

	d := NewDebouncer(30*time.Millisecond, func(files []string) {
		mu.Lock()
		defer mu.Unlock()

		callCount++
	})
	defer d.Stop()

	d.Trigger("veil.yaml")
	time.Sleep(50 * time.Millisecond)

	d.Trigger(".env")
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	assert.Equal(t, 2, callCount)
	mu.Unlock()
}

func Test_Debouncer_UniqueFiles(t *testing.T) {
	var receivedFiles []string

	d := NewDebouncer(50*time.Millisecond, func(files []string) {
		receivedFiles = files
	})
	defer d.Stop()

	d.Trigger("veil.yaml")
	d.Trigger("veil.yaml")
	d.Trigger("veil.yaml")

	time.Sleep(100 * time.Millisecond)

	assert.Len(t, receivedFiles, 1)
	assert.Equal(t, "veil.yaml", receivedFiles[0])
}

func Test_Debouncer_SortedFiles(t *testing.T) {
	received := make(chan []string, 1)

	d := NewDebouncer(20*time.Millisecond, func(files []string) {
		received <- files
	})
	defer d.Stop()

	d.Trigger("veil.yaml")
	d.Trigger(".env")

	select {
	case files := <-received:
		assert.Equal(t, []string{".env", "veil.yaml"}, files)
	case <-time.After(time.Second):
		t.Fatal("Expected callback")
	}
}

func Test_Debouncer_ZeroDurationFiresImmediately(t *testing.T) {
	var calls [][]string

	d := NewDebouncer(0, func(files []string) {
		calls = append(calls, files)
	})
	defer d.Stop()

	d.Trigger("veil.yaml")
	d.Trigger("veil.yaml")

	assert.Equal(t, [][]string{{"veil.yaml"}, {"veil.yaml"}}, calls)
}

func Test_Debouncer_StaleGenerationIgnored(t *testing.T) {
	var (
		fires []func()
		calls [][]string
	)

	d := &debouncer{
		quiet:     time.Second,
		callback:  func(files []string) { calls = append(calls, files) },
		afterFunc: func(_ time.Duration, fn func()) { fires = append(fires, fn) },
		pending:   make(map[string]struct{}),
	}

	d.Trigger("veil.yaml")
	d.Trigger(".env")

	fires[0]()
	assert.Empty(t, calls, "superseded timer does nothing")

	fires[1]()
	assert.Equal(t, [][]string{{".env", "veil.yaml"}}, calls)
}
