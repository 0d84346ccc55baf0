package cli

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestSpinnerStartStop(t *testing.T) {
	s := newSpinner("Morphing dino into circle...")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	if s.Cancelled() != true {
		// Stop cancels the internal context, so Cancelled reports true
		// after a plain Stop as well.
		t.Error("Cancelled() = false after Stop")
	}
}

func TestSpinnerContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinnerWithContext(ctx, "Morphing...")
	s.Start()
	cancel()

	// Give the render goroutine time to notice.
	time.Sleep(100 * time.Millisecond)
	if !s.Cancelled() {
		t.Error("spinner should be cancelled after context cancellation")
	}
}

func TestSpinnerContextTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s := newSpinnerWithContext(ctx, "Morphing...")
	s.Start()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("spinner should be cancelled after context timeout")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner("Morphing...")
	s.Start()

	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerShowsElapsed(t *testing.T) {
	out, _ := captureStderr(t, func() error {
		s := newSpinner("Morphing...")
		s.Start()
		time.Sleep(200 * time.Millisecond)
		s.Stop()
		return nil
	})

	if !strings.Contains(out, "Morphing...") {
		t.Errorf("spinner output missing message: %q", out)
	}
	if !strings.Contains(out, "(0s)") {
		t.Errorf("spinner output missing elapsed time: %q", out)
	}
}

func TestSpinnerStopHelpers(t *testing.T) {
	s := newSpinner("Morphing...")
	s.Start()
	s.StopWithSuccess("done")

	s = newSpinner("Morphing...")
	s.Start()
	s.StopWithError("failed")
}
