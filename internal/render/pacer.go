package render

import "time"

// Pacer is a bounded buffer that delays delivery of completed frames to
// match a target cadence, used only by video mode (with or without a
// preview window) — offline single-frame rendering never touches it.
//
// The backoff is heuristic and not self-correcting: once the interval has
// grown past the target because a frame ran long, it never shrinks back
// down on its own.
type Pacer struct {
	queue          chan FrameMessage
	targetInterval time.Duration
}

// NewPacer builds a Pacer with the given buffer size and target frame
// rate.
func NewPacer(bufferSize int, targetFPS float64) *Pacer {
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Pacer{
		queue:          make(chan FrameMessage, bufferSize),
		targetInterval: time.Duration(float64(time.Second) / targetFPS),
	}
}

// Enqueue adds a completed frame to the buffer, blocking if it is full —
// the producer is the render driver, which naturally slows to the
// consumer's pace under backpressure.
func (p *Pacer) Enqueue(f FrameMessage) {
	p.queue <- f
}

// Close signals that no further frames will be enqueued; Run drains the
// remaining buffered frames and then returns.
func (p *Pacer) Close() {
	close(p.queue)
}

// Run dequeues frames at the target cadence, forwarding each to out. If a
// cycle takes longer than the target interval, the next interval backs off
// by 1.5x; if it finishes early, Run sleeps the remainder. Once the queue
// is closed and drained, Run closes out and returns.
func (p *Pacer) Run(out chan<- FrameMessage) {
	defer close(out)
	interval := p.targetInterval
	last := time.Now()
	for frame := range p.queue {
		out <- frame
		elapsed := time.Since(last)
		if elapsed > interval {
			interval = time.Duration(float64(interval) * 1.5)
		} else {
			time.Sleep(interval - elapsed)
		}
		last = time.Now()
	}
}
