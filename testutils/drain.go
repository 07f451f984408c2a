// Package testutils contains helpers shared by tests in this module.
package testutils

import (
	"time"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/bintree/chops"
)

// TestT is the subset of *testing.T used by the helpers here.
type TestT interface {
	Helper()
	Logf(string, ...any)
	Errorf(string, ...any) // also used by testify/assert
}

// Drain expects to receive data in order from ch, then expects
// ch to be closed.
// The channel must already be filled with the expected data.
// This will not work if the producer is still sending
// when this is called; use DrainBlocking for that.
func Drain[T any](t TestT, data []T, ch <-chan T) {
	t.Helper()
	t.Logf("draining: expecting %v", data)

	for i, datum := range data {
		chops.TryRecv(ch).Match(
			func(el T) {
				assert.Equal(t, datum, el, "i=%d", i)
			},
			func() {
				t.Errorf("channel closed early, expecting i=%d %v", i, datum)
			},
			func() {
				t.Errorf("channel was empty, expecting i=%d %v", i, datum)
			},
		)
	}

	chops.TryRecv(ch).Match(
		func(el T) {
			t.Errorf("channel should be closed, but received: %v", el)
		},
		func() {},
		func() {
			t.Errorf("at the end of draining, channel was empty but unclosed")
		},
	)
}

// DrainBlocking expects to receive data in order from ch, then expects
// ch to be closed. Unlike a non-blocking drain, the producer may still
// be running: each receive waits up to timeout.
func DrainBlocking[T any](t TestT, data []T, ch <-chan T, timeout time.Duration) {
	t.Helper()
	t.Logf("draining: expecting %v", data)

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for i, datum := range data {
		select {
		case el, ok := <-ch:
			if !ok {
				t.Errorf("channel closed early, expecting i=%d %v", i, datum)
				return
			}
			assert.Equal(t, datum, el, "i=%d", i)
		case <-timer.C:
			t.Errorf("timed out, expecting i=%d %v", i, datum)
			return
		}
		resetTimer(timer, timeout)
	}

	select {
	case el, ok := <-ch:
		if ok {
			t.Errorf("channel should be closed, but received: %v", el)
		}
	case <-timer.C:
		t.Errorf("at the end of draining, channel was not closed after %v", timeout)
	}
}

func resetTimer(timer *time.Timer, d time.Duration) {
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	timer.Reset(d)
}
