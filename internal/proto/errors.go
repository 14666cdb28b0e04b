package proto

import "fmt"

// FrameError reports a malformed frame rejected before dispatch.
type FrameError struct {
	Reason string
	Got    int
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("proto: malformed frame: %s (got %d bytes)", e.Reason, e.Got)
}
