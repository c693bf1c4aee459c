package drivemode

import (
	"github.com/PedroRendeiro/arduino-robot/pkg/arduino"
	"github.com/PedroRendeiro/arduino-robot/pkg/tilt"
)

// Tilt thresholds.  Turning needs a deliberate sideways tilt; the drive
// axis has an asymmetric dead zone of [-FBMag, 0] because a phone held
// naturally rests tipped slightly back, so "flat" is not fb=0.
const (
	LRMag = 0.4
	FBMag = 0.5
)

type TurnState int

const (
	TurnNone TurnState = iota
	TurnLeft
	TurnRight
)

func (s TurnState) String() string {
	switch s {
	case TurnLeft:
		return "left"
	case TurnRight:
		return "right"
	default:
		return "none"
	}
}

type DriveState int

const (
	DriveNone DriveState = iota
	DriveForward
	DriveReverse
)

func (s DriveState) String() string {
	switch s {
	case DriveForward:
		return "forward"
	case DriveReverse:
		return "reverse"
	default:
		return "none"
	}
}

// State is the mapper's whole memory between samples: the last commanded
// direction on each axis.  It exists only so we can tell when a command
// actually changes direction.
type State struct {
	Turn  TurnState
	Drive DriveState
}

// Wiring maps the motor shield's driver inputs to Arduino pin numbers.
// Each motor has a pair of direction pins; the turn motor is switched by
// a digital enable pin, the drive motor's power comes from a PWM pin.
type Wiring struct {
	TurnEnable int `yaml:"turn_enable"`
	TurnA      int `yaml:"turn_a"`
	TurnB      int `yaml:"turn_b"`

	DriveSpeed int `yaml:"drive_speed"`
	DriveA     int `yaml:"drive_a"`
	DriveB     int `yaml:"drive_b"`
}

func DefaultWiring() Wiring {
	return Wiring{
		TurnEnable: 10,
		TurnA:      8,
		TurnB:      7,
		DriveSpeed: 9,
		DriveA:     5,
		DriveB:     4,
	}
}

// Mapper turns one tilt sample into pin writes for the two motors.  Pin
// writes happen before Apply returns, so the returned State never runs
// ahead of the hardware.
type Mapper struct {
	Pins   arduino.PinWriter
	Wiring Wiring
}

func (m *Mapper) Apply(sample tilt.Sample, st State) (State, error) {
	st, err := m.applyTurn(sample.LR, st)
	if err != nil {
		return st, err
	}
	return m.applyDrive(sample.FB, st)
}

func (m *Mapper) applyTurn(lr float64, st State) (State, error) {
	switch {
	case lr < -LRMag:
		if st.Turn != TurnLeft {
			// Cut power before flipping the direction pins; switching
			// an H-bridge under load stresses the driver.
			if err := m.redirectTurn(arduino.High, arduino.Low); err != nil {
				return st, err
			}
		}
		if err := m.Pins.DigitalWrite(m.Wiring.TurnEnable, arduino.High); err != nil {
			return st, err
		}
		st.Turn = TurnLeft
	case lr > LRMag:
		if st.Turn != TurnRight {
			if err := m.redirectTurn(arduino.Low, arduino.High); err != nil {
				return st, err
			}
		}
		if err := m.Pins.DigitalWrite(m.Wiring.TurnEnable, arduino.High); err != nil {
			return st, err
		}
		st.Turn = TurnRight
	default:
		if err := m.Pins.DigitalWrite(m.Wiring.TurnEnable, arduino.Low); err != nil {
			return st, err
		}
		st.Turn = TurnNone
	}
	return st, nil
}

func (m *Mapper) redirectTurn(a, b int) error {
	if err := m.Pins.DigitalWrite(m.Wiring.TurnEnable, arduino.Low); err != nil {
		return err
	}
	if err := m.Pins.DigitalWrite(m.Wiring.TurnA, a); err != nil {
		return err
	}
	return m.Pins.DigitalWrite(m.Wiring.TurnB, b)
}

func (m *Mapper) applyDrive(fb float64, st State) (State, error) {
	switch {
	case fb < -FBMag:
		// Reverse only kicks in past the dead zone, so rescale the
		// remaining [-1, -FBMag] range to a [0, 0.5] weight.
		weight := -(fb + FBMag)
		if st.Drive != DriveReverse {
			if err := m.redirectDrive(arduino.High, arduino.Low); err != nil {
				return st, err
			}
		}
		if err := m.Pins.AnalogWrite(m.Wiring.DriveSpeed, speedValue(weight)); err != nil {
			return st, err
		}
		st.Drive = DriveReverse
	case fb > 0:
		if st.Drive != DriveForward {
			if err := m.redirectDrive(arduino.Low, arduino.High); err != nil {
				return st, err
			}
		}
		if err := m.Pins.AnalogWrite(m.Wiring.DriveSpeed, speedValue(fb)); err != nil {
			return st, err
		}
		st.Drive = DriveForward
	default:
		if err := m.Pins.AnalogWrite(m.Wiring.DriveSpeed, 0); err != nil {
			return st, err
		}
		st.Drive = DriveNone
	}
	return st, nil
}

func (m *Mapper) redirectDrive(a, b int) error {
	if err := m.Pins.AnalogWrite(m.Wiring.DriveSpeed, 0); err != nil {
		return err
	}
	if err := m.Pins.DigitalWrite(m.Wiring.DriveA, a); err != nil {
		return err
	}
	return m.Pins.DigitalWrite(m.Wiring.DriveB, b)
}

// AllStop forces both motors off and forgets the direction state.
func (m *Mapper) AllStop() (State, error) {
	if err := m.Pins.DigitalWrite(m.Wiring.TurnEnable, arduino.Low); err != nil {
		return State{}, err
	}
	if err := m.Pins.AnalogWrite(m.Wiring.DriveSpeed, 0); err != nil {
		return State{}, err
	}
	return State{}, nil
}

// speedValue rescales a [0, 0.5] drive weight to the full 0-255 PWM
// range, clamping anything beyond it to full power.
func speedValue(weight float64) uint8 {
	w := weight * 2
	if w < 0 {
		w = 0
	}
	if w > 1 {
		w = 1
	}
	return uint8(w * 255)
}
