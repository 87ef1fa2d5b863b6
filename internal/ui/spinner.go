package ui

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// Spinner shows an animated wave indicator for long-running operations,
// like running the formatter over a large staged set. Renders to stderr
// and is a no-op when stderr is not a terminal.
type Spinner struct {
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

// Wave frames: 3 bars that rise and fall in sequence.
var waveFrames = []string{
	"▃ ▁ ▃",
	"▅ ▂ ▁",
	"▇ ▅ ▂",
	"█ ▇ ▅",
	"▇ █ ▇",
	"▅ ▇ █",
	"▂ ▅ ▇",
	"▁ ▂ ▅",
}

// NewSpinner starts an animated spinner with the given message (auto-dimmed).
// Call Stop() to clear the spinner line and release resources.
func NewSpinner(message string) *Spinner {
	s := &Spinner{
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}

	if !IsTTY() {
		close(s.stopped)
		return s
	}

	formatted := Dim(message)

	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		frame := 0
		for {
			select {
			case <-s.done:
				fmt.Fprint(os.Stderr, "\r\033[K")
				return
			case <-ticker.C:
				fmt.Fprintf(os.Stderr, "\r\033[K  %s %s", Cyan(waveFrames[frame]), formatted)
				frame = (frame + 1) % len(waveFrames)
			}
		}
	}()

	return s
}

// Stop clears the spinner line and joins the goroutine.
// Safe to call multiple times.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		close(s.done)
		<-s.stopped
	})
}
