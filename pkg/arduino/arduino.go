package arduino

import (
	"fmt"

	"go.bug.st/serial"
)

// Pin levels for DigitalWrite.
const (
	Low  = 0
	High = 1
)

// PinWriter is the remote pin-IO surface exposed by the robot's sketch.
// All six motor pins are configured as OUTPUT by the firmware at boot, so
// there is no pin-mode handshake here.  Writes are fire-and-forget; the
// firmware sends no acknowledgement.
type PinWriter interface {
	DigitalWrite(pin, level int) error
	AnalogWrite(pin int, value uint8) error
	Close() error
}

// Board talks to the Arduino over a serial device.  With a Bluetooth
// serial module on the car, the device is the bound RFCOMM node
// (e.g. /dev/rfcomm0); pairing is the OS's problem, not ours.
type Board struct {
	port serial.Port
}

var _ PinWriter = (*Board)(nil)

func Connect(device string, baudRate int) (*Board, error) {
	port, err := serial.Open(device, &serial.Mode{
		BaudRate: baudRate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", device, err)
	}
	return &Board{port: port}, nil
}

// DigitalWrite drives a pin fully high or low.  Any non-zero level is
// treated as high, matching the firmware's parsing.
func (b *Board) DigitalWrite(pin, level int) error {
	if level != Low {
		level = High
	}
	_, err := fmt.Fprintf(b.port, "d %d %d\n", pin, level)
	return err
}

// AnalogWrite sets a PWM pin's duty cycle (0-255).
func (b *Board) AnalogWrite(pin int, value uint8) error {
	_, err := fmt.Fprintf(b.port, "a %d %d\n", pin, value)
	return err
}

func (b *Board) Close() error {
	return b.port.Close()
}
