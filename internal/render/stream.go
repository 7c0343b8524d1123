package render

import "sync/atomic"

// PixelMessage is a single completed pixel: (x, y, rgb).
type PixelMessage struct {
	X, Y int
	RGB  [3]byte
}

// FrameMessage is either a single pixel update or a whole encoded frame,
// matching the two shapes a preview consumer needs: cheap incremental
// updates during interactive rendering, and a full frame per tick in
// video/animation mode.
type FrameMessage struct {
	// Kind selects which of the two payloads below is populated.
	Kind FrameMessageKind
	// Pixel is valid when Kind == FrameKindPixel.
	Pixel PixelMessage
	// Image is valid when Kind == FrameKindImage. Bytes is packed RGB24,
	// row-major.
	Image ImagePayload
}

// FrameMessageKind discriminates FrameMessage's payload.
type FrameMessageKind int

const (
	// FrameKindPixel marks a FrameMessage carrying a single pixel update.
	FrameKindPixel FrameMessageKind = iota
	// FrameKindImage marks a FrameMessage carrying a whole encoded frame.
	FrameKindImage
)

// ImagePayload is a whole frame's worth of packed RGB24 pixels.
type ImagePayload struct {
	Width, Height int
	Bytes         []byte
}

// PixelSink delivers per-pixel completion notifications to a bounded,
// thread-safe channel. Send may be called concurrently from any worker
// goroutine during a parallel render; once the channel has been closed or
// MarkClosed has been called, Send becomes a no-op rather than panicking —
// this is the ChannelClosed disposition from the error design. A receiver
// that stops reading without either still leaves Send blocked on a full
// channel.
type PixelSink struct {
	ch      chan<- PixelMessage
	dropped atomic.Bool
}

// NewPixelSink wraps a channel as a PixelSink. A nil channel produces a
// sink whose Send is always a no-op, useful when no preview is attached.
func NewPixelSink(ch chan<- PixelMessage) *PixelSink {
	return &PixelSink{ch: ch}
}

// Send forwards msg to the underlying channel unless the receiver has
// already gone away. A panic from sending on a closed channel (the
// receiver dropped out) is recovered and latches dropped so every
// subsequent call from any worker goroutine is a cheap no-op.
func (s *PixelSink) Send(msg PixelMessage) {
	if s == nil || s.ch == nil || s.dropped.Load() {
		return
	}
	defer func() {
		if recover() != nil {
			s.dropped.Store(true)
		}
	}()
	s.ch <- msg
}

// MarkClosed flags the sink as permanently inactive, e.g. after the
// preview UI signaled it is no longer reading.
func (s *PixelSink) MarkClosed() {
	if s != nil {
		s.dropped.Store(true)
	}
}
