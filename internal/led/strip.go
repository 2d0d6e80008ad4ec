package led

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/extra/devices/screen"
	"periph.io/x/host/v3"
)

// DefaultSpeed drives WS2812 NRZ timing at 3 SPI bits per data bit.
const DefaultSpeed = 2500 * physic.KiloHertz

// Strip draws frames onto a periph display.Drawer as a 1xN image.
type Strip struct {
	drawer display.Drawer
	port   io.Closer
	img    *image.NRGBA
	count  int
}

// NewStrip wraps d for count LEDs.
func NewStrip(d display.Drawer, count int) *Strip {
	return &Strip{
		drawer: d,
		img:    image.NewNRGBA(image.Rect(0, 0, count, 1)),
		count:  count,
	}
}

// NewNRZ encodes frames for WS2812 over an already opened SPI port.
func NewNRZ(p spi.Port, count int, freq physic.Frequency) (*Strip, error) {
	if count <= 0 {
		return nil, fmt.Errorf("invalid LED count: %d", count)
	}
	if freq == 0 {
		freq = DefaultSpeed
	}
	d, err := nrzled.NewSPI(p, &nrzled.Opts{
		NumPixels: count,
		Channels:  3,
		Freq:      freq,
	})
	if err != nil {
		return nil, fmt.Errorf("nrzled: %w", err)
	}
	if err := d.Halt(); err != nil {
		return nil, fmt.Errorf("nrzled halt: %w", err)
	}
	return NewStrip(d, count), nil
}

// OpenSPI initializes the periph host, opens the named SPI port ("" for the
// first one) and returns a WS2812 strip on it.
func OpenSPI(name string, count int, speedHz int) (*Strip, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}
	p, err := spireg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open spi %q: %w", name, err)
	}
	s, err := NewNRZ(p, count, physic.Frequency(speedHz)*physic.Hertz)
	if err != nil {
		_ = p.Close()
		return nil, err
	}
	s.port = p
	return s, nil
}

// NewConsole renders frames as ANSI color blocks on stdout.
func NewConsole(count int) *Strip {
	return NewStrip(screen.New(count), count)
}

func (s *Strip) Write(rgb []byte) error {
	if err := checkFrame(rgb, s.count); err != nil {
		return err
	}
	for i := 0; i < s.count; i++ {
		s.img.SetNRGBA(i, 0, color.NRGBA{R: rgb[i*3], G: rgb[i*3+1], B: rgb[i*3+2], A: 255})
	}
	return s.drawer.Draw(s.drawer.Bounds(), s.img, image.Point{})
}

func (s *Strip) Close() error {
	err := s.drawer.Halt()
	if s.port != nil {
		if cerr := s.port.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func (s *Strip) String() string {
	return fmt.Sprintf("%s(%d)", s.drawer, s.count)
}
