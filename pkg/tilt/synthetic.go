package tilt

import (
	"math"
	"sync"
	"time"
)

// Synthetic generates smoothly-varying samples so the rest of the stack
// can be exercised with no handset attached.
type Synthetic struct {
	samples   chan Sample
	stop      chan struct{}
	closeOnce sync.Once
}

var _ Source = (*Synthetic)(nil)

func NewSynthetic(interval time.Duration) *Synthetic {
	s := &Synthetic{
		samples: make(chan Sample),
		stop:    make(chan struct{}),
	}
	go s.loop(interval)
	return s
}

func (s *Synthetic) Samples() <-chan Sample {
	return s.samples
}

func (s *Synthetic) Close() error {
	s.closeOnce.Do(func() {
		close(s.stop)
	})
	return nil
}

func (s *Synthetic) loop(interval time.Duration) {
	defer close(s.samples)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	start := time.Now()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			elapsed := time.Since(start).Seconds()
			sample := Sample{
				LR: math.Sin(elapsed / 3),
				FB: math.Cos(elapsed / 5),
			}
			select {
			case s.samples <- sample:
			case <-s.stop:
				return
			}
		}
	}
}
