package drivemode

import (
	"context"
	"fmt"
	"sync"

	"github.com/PedroRendeiro/arduino-robot/pkg/arduino"
	"github.com/PedroRendeiro/arduino-robot/pkg/tilt"
)

// DriveMode owns a driving session: it consumes tilt samples and feeds
// them through the Mapper until the context is cancelled or the sample
// source goes away.  Whatever the reason for stopping, the loop's last
// act is an all-stop against the board.
type DriveMode struct {
	mapper Mapper

	cancel  context.CancelFunc
	stopWG  sync.WaitGroup
	samples <-chan tilt.Sample
	done    chan struct{}
}

func New(pins arduino.PinWriter, wiring Wiring, samples <-chan tilt.Sample) *DriveMode {
	return &DriveMode{
		mapper: Mapper{
			Pins:   pins,
			Wiring: wiring,
		},
		samples: samples,
		done:    make(chan struct{}),
	}
}

func (m *DriveMode) Name() string {
	return "Tilt drive mode"
}

func (m *DriveMode) Start(ctx context.Context) {
	m.stopWG.Add(1)
	var loopCtx context.Context
	loopCtx, m.cancel = context.WithCancel(ctx)
	go m.loop(loopCtx)
}

func (m *DriveMode) Stop() {
	m.cancel()
	m.stopWG.Wait()
}

// Done is closed once the drive loop has exited and the motors have been
// stopped.  It fires without Stop() being called if the sample source
// closes or a pin write fails (i.e. the connection died).
func (m *DriveMode) Done() <-chan struct{} {
	return m.done
}

func (m *DriveMode) loop(ctx context.Context) {
	defer m.stopWG.Done()
	defer close(m.done)

	var st State
	defer func() {
		// Best effort; the transport may already be gone.
		if _, err := m.mapper.AllStop(); err != nil {
			fmt.Println("Failed to stop motors:", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case sample, ok := <-m.samples:
			if !ok {
				fmt.Println("Tilt source closed, stopping motors")
				return
			}
			var err error
			st, err = m.mapper.Apply(sample, st)
			if err != nil {
				fmt.Println("Failed to write to board:", err)
				return
			}
		}
	}
}
