package tilt

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.bug.st/serial"
)

// Sample is one orientation reading from the handset.
type Sample struct {
	LR float64 // Lateral tilt; -1 = full left, +1 = full right.
	FB float64 // Forward/back tilt; +1 = screen-up flat, tipped forward.
}

func (s Sample) String() string {
	return fmt.Sprintf("lr=%.2f fb=%.2f", s.LR, s.FB)
}

// Source delivers orientation samples at a bounded rate.  The channel is
// closed when the source stops (Close() or a dead link), which is the
// consumer's signal to shut the motors down.
type Source interface {
	Samples() <-chan Sample
	Close() error
}

// Reader turns the line protocol spoken by the handset's serial bridge
// into Samples.  Each line carries two floats, lateral then forward/back.
type Reader struct {
	port     io.ReadCloser
	samples  chan Sample
	interval time.Duration

	stop      chan struct{}
	closeOnce sync.Once
}

var _ Source = (*Reader)(nil)

func Open(device string, baudRate int, interval time.Duration) (*Reader, error) {
	port, err := serial.Open(device, &serial.Mode{
		BaudRate: baudRate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", device, err)
	}
	return newReader(port, interval), nil
}

func newReader(port io.ReadCloser, interval time.Duration) *Reader {
	r := &Reader{
		port:     port,
		samples:  make(chan Sample),
		interval: interval,
		stop:     make(chan struct{}),
	}
	go r.loop()
	return r
}

func (r *Reader) Samples() <-chan Sample {
	return r.samples
}

// Close is safe to call while the read loop is running: closing the port
// fails the blocked read, and the stop channel releases the loop if it is
// mid-send to a consumer that has already gone away.
func (r *Reader) Close() error {
	r.closeOnce.Do(func() {
		close(r.stop)
	})
	return r.port.Close()
}

func (r *Reader) loop() {
	defer close(r.samples)
	scanner := bufio.NewScanner(r.port)
	var last time.Time
	for scanner.Scan() {
		sample, err := ParseSample(scanner.Text())
		if err != nil {
			fmt.Println("Discarding bad tilt line:", err)
			continue
		}
		// The sensor reports much faster than we want to drive the
		// motors; drop samples to keep to one per interval.
		if time.Since(last) < r.interval {
			continue
		}
		last = time.Now()
		select {
		case r.samples <- sample:
		case <-r.stop:
			return
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Println("Tilt source closed:", err)
	}
}

// ParseSample parses a "<lr> <fb>" line, clamping both axes to [-1, 1].
func ParseSample(line string) (Sample, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Sample{}, fmt.Errorf("expected 2 fields but got %q", line)
	}
	lr, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Sample{}, fmt.Errorf("bad lateral value in %q: %w", line, err)
	}
	fb, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Sample{}, fmt.Errorf("bad forward/back value in %q: %w", line, err)
	}
	return Sample{LR: clamp(lr), FB: clamp(fb)}, nil
}

func clamp(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
