package drivemode

import (
	"context"
	"testing"
	"time"

	"github.com/PedroRendeiro/arduino-robot/pkg/tilt"
)

func TestDriveModeStopsMotorsOnSourceClose(t *testing.T) {
	fake := newFakeBoard()
	samples := make(chan tilt.Sample)
	m := New(fake, DefaultWiring(), samples)
	m.Start(context.Background())

	samples <- tilt.Sample{FB: 0.25}
	close(samples)

	select {
	case <-m.Done():
	case <-time.After(time.Second):
		t.Fatal("Drive mode did not finish after its source closed")
	}
	m.Stop()

	// The sample must have been applied, then undone by the all-stop.
	sawSpeed := false
	for _, w := range fake.writes {
		if w.analog && w.pin == m.mapper.Wiring.DriveSpeed && w.value == 127 {
			sawSpeed = true
		}
	}
	if !sawSpeed {
		t.Fatalf("Drive mode never applied the sample; writes: %v", fake.writes)
	}
	if fake.analog[m.mapper.Wiring.DriveSpeed] != 0 {
		t.Fatalf("Drive motor left at speed %v after shutdown", fake.analog[m.mapper.Wiring.DriveSpeed])
	}
	if fake.digital[m.mapper.Wiring.TurnEnable] != 0 {
		t.Fatal("Turn motor left enabled after shutdown")
	}
}

func TestDriveModeStopIsClean(t *testing.T) {
	fake := newFakeBoard()
	samples := make(chan tilt.Sample)
	m := New(fake, DefaultWiring(), samples)
	m.Start(context.Background())
	m.Stop()

	select {
	case <-m.Done():
	case <-time.After(time.Second):
		t.Fatal("Drive mode did not finish after Stop")
	}
	if fake.analog[m.mapper.Wiring.DriveSpeed] != 0 {
		t.Fatal("Stop did not zero the drive motor")
	}
}
