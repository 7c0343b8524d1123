package render

import "fmt"

// ErrImageIO names a filesystem or encoder failure while saving a rendered
// frame. No function in this module returns it: cmd/raytrace logs such a
// failure and exits non-zero.
var ErrImageIO = fmt.Errorf("image io error")

// ErrChannelClosed names the case where a preview receiver has been
// dropped. No function in this module returns it: rendering continues and
// PixelSink.Send silently becomes a no-op instead.
var ErrChannelClosed = fmt.Errorf("preview channel closed")
