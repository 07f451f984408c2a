package testutils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recordingT struct {
	errors []string
}

func (r *recordingT) Helper() {}

func (r *recordingT) Logf(string, ...any) {}

func (r *recordingT) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func TestDrainBlocking(t *testing.T) {
	tests := []struct {
		name   string
		data   []int
		send   []int
		close  bool
		errors int
	}{
		{
			name:  "empty closed",
			close: true,
		},
		{
			name:  "exact",
			data:  []int{1, 2, 3},
			send:  []int{1, 2, 3},
			close: true,
		},
		{
			name:   "closed early",
			data:   []int{1, 2},
			send:   []int{1},
			close:  true,
			errors: 1,
		},
		{
			name:   "not closed",
			data:   []int{1},
			send:   []int{1},
			errors: 1,
		},
		{
			name:   "extra element",
			data:   []int{1},
			send:   []int{1, 2},
			close:  true,
			errors: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := make(chan int, len(tt.send))
			for _, v := range tt.send {
				ch <- v
			}
			if tt.close {
				close(ch)
			}

			rt := &recordingT{}
			DrainBlocking(rt, tt.data, ch, 10*time.Millisecond)
			assert.Len(t, rt.errors, tt.errors, "blocking: %v", rt.errors)

			// the channel is already filled, so the non-blocking
			// drain must agree
			ch = make(chan int, len(tt.send))
			for _, v := range tt.send {
				ch <- v
			}
			if tt.close {
				close(ch)
			}

			rt = &recordingT{}
			Drain(rt, tt.data, ch)
			assert.Len(t, rt.errors, tt.errors, "non-blocking: %v", rt.errors)
		})
	}
}

func TestDrain_Empty(t *testing.T) {
	// an open, empty channel must not block Drain
	rt := &recordingT{}
	Drain(rt, []int{1}, make(chan int))
	assert.Equal(t, []string{
		"channel was empty, expecting i=0 1",
		"at the end of draining, channel was empty but unclosed",
	}, rt.errors)
}
