package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPixelSinkSendsOnOpenChannel(t *testing.T) {
	ch := make(chan PixelMessage, 1)
	sink := NewPixelSink(ch)
	sink.Send(PixelMessage{X: 1, Y: 2, RGB: [3]byte{1, 2, 3}})

	msg := <-ch
	assert.Equal(t, 1, msg.X)
}

func TestPixelSinkNilChannelIsNoOp(t *testing.T) {
	sink := NewPixelSink(nil)
	assert.NotPanics(t, func() { sink.Send(PixelMessage{}) })
}

func TestPixelSinkNilSinkIsNoOp(t *testing.T) {
	var sink *PixelSink
	assert.NotPanics(t, func() { sink.Send(PixelMessage{}) })
	assert.NotPanics(t, func() { sink.MarkClosed() })
}

func TestPixelSinkStopsSendingAfterClosedChannel(t *testing.T) {
	ch := make(chan PixelMessage, 1)
	sink := NewPixelSink(ch)
	close(ch)

	assert.NotPanics(t, func() { sink.Send(PixelMessage{}) })
	assert.NotPanics(t, func() { sink.Send(PixelMessage{}) })
}

func TestPixelSinkMarkClosedLatches(t *testing.T) {
	ch := make(chan PixelMessage, 1)
	sink := NewPixelSink(ch)
	sink.MarkClosed()

	sink.Send(PixelMessage{X: 9})
	select {
	case <-ch:
		t.Fatal("expected no send after MarkClosed")
	default:
	}
}
