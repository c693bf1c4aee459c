package arduino

import "fmt"

type dummyBoard struct{}

// Dummy returns a PinWriter that just logs each write, for bench runs
// without the car attached.
func Dummy() PinWriter {
	return &dummyBoard{}
}

func (d *dummyBoard) DigitalWrite(pin, level int) error {
	fmt.Printf("Dummy board: digitalWrite pin=%v level=%v\n", pin, level)
	return nil
}

func (d *dummyBoard) AnalogWrite(pin int, value uint8) error {
	fmt.Printf("Dummy board: analogWrite pin=%v value=%v\n", pin, value)
	return nil
}

func (d *dummyBoard) Close() error {
	return nil
}
