package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPacerForwardsAllEnqueuedFrames(t *testing.T) {
	pacer := NewPacer(4, 1000)
	out := make(chan FrameMessage)

	done := make(chan struct{})
	go func() {
		pacer.Run(out)
		close(done)
	}()

	for i := 0; i < 3; i++ {
		pacer.Enqueue(FrameMessage{Kind: FrameKindPixel, Pixel: PixelMessage{X: i}})
	}
	pacer.Close()

	var received []int
	for msg := range out {
		received = append(received, msg.Pixel.X)
	}
	<-done

	assert.Equal(t, []int{0, 1, 2}, received)
}

func TestNewPacerClampsBufferSize(t *testing.T) {
	pacer := NewPacer(0, 30)
	assert.Equal(t, 1, cap(pacer.queue))
}
