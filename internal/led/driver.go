package led

import (
	"errors"
	"fmt"
)

// ErrFrameSize is returned by Write for a frame that does not hold exactly
// one RGB triplet per LED.
var ErrFrameSize = errors.New("frame size mismatch")

// Driver abstracts an LED output sink.
type Driver interface {
	// Write pushes an RGB frame to hardware. len(rgb) must be 3*N.
	Write(rgb []byte) error
	// Close releases resources.
	Close() error
}

func checkFrame(rgb []byte, count int) error {
	if len(rgb) != count*3 {
		return fmt.Errorf("%w: got %d bytes for %d LEDs", ErrFrameSize, len(rgb), count)
	}
	return nil
}

// Multi fans one frame out to several drivers. The first error wins but every
// driver still gets the frame.
type Multi []Driver

func (m Multi) Write(rgb []byte) error {
	var first error
	for _, d := range m {
		if err := d.Write(rgb); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (m Multi) Close() error {
	var errs []error
	for _, d := range m {
		if err := d.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
