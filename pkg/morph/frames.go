package morph

import "github.com/JCGoran/data-morph/pkg/dataset"

// Frame is a recorded dataset snapshot tied to the iteration that
// produced it.
type Frame struct {
	Iteration int
	Snapshot  *dataset.Dataset
}

// SampleIndices selects a uniformly-spaced subsequence of at most
// maxFrames iteration indices out of [0, n), always including the
// first and the last. This is pure index selection; no statistical or
// geometric work happens here.
func SampleIndices(n, maxFrames int) []int {
	if n <= 0 {
		return nil
	}
	if n == 1 || maxFrames == 1 {
		return []int{n - 1}
	}
	k := min(maxFrames, n)
	indices := make([]int, 0, k)
	last := -1
	for i := range k {
		// Round to the nearest index along the trajectory.
		idx := (i*(n-1) + (k-1)/2) / (k - 1)
		if idx != last {
			indices = append(indices, idx)
			last = idx
		}
	}
	return indices
}

// Loop orders the recorded frames for animation. With forwardOnly the
// forward subsequence is returned as-is; otherwise the reversed
// interior is appended so the animation loops back to the start
// without duplicating either endpoint.
func Loop(frames []Frame, forwardOnly bool) []Frame {
	if forwardOnly || len(frames) < 3 {
		return frames
	}
	out := make([]Frame, 0, 2*len(frames)-2)
	out = append(out, frames...)
	for i := len(frames) - 2; i > 0; i-- {
		out = append(out, frames[i])
	}
	return out
}
