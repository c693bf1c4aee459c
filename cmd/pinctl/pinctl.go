// pinctl pokes individual pins on the car for bench testing the motor
// shield wiring.  Commands on stdin:
//
//	d <pin> <0|1>    digital write
//	a <pin> <0-255>  analog write
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/PedroRendeiro/arduino-robot/pkg/arduino"
)

type command struct {
	analog bool
	pin    int
	value  int
}

func parseCommand(line string) (command, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return command{}, fmt.Errorf("expected 3 fields but got %q", line)
	}
	var c command
	switch fields[0] {
	case "d":
	case "a":
		c.analog = true
	default:
		return command{}, fmt.Errorf("unknown command %q", fields[0])
	}
	pin, err := strconv.Atoi(fields[1])
	if err != nil {
		return command{}, fmt.Errorf("bad pin %q", fields[1])
	}
	c.pin = pin
	value, err := strconv.Atoi(fields[2])
	if err != nil {
		return command{}, fmt.Errorf("bad value %q", fields[2])
	}
	if c.analog && (value < 0 || value > 255) {
		return command{}, fmt.Errorf("analog value %d out of range 0-255", value)
	}
	if !c.analog && value != arduino.Low && value != arduino.High {
		return command{}, fmt.Errorf("digital level %d must be 0 or 1", value)
	}
	c.value = value
	return c, nil
}

func main() {
	device := flag.String("device", "/dev/rfcomm0", "serial device for the car")
	baudRate := flag.Int("baud", 9600, "baud rate")
	flag.Parse()

	board, err := arduino.Connect(*device, *baudRate)
	if err != nil {
		log.Fatalln("Failed to open board:", err)
	}
	defer board.Close()

	fmt.Println("Connected.  'd <pin> <0|1>' or 'a <pin> <0-255>', Ctrl-D to quit.")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		c, err := parseCommand(scanner.Text())
		if err != nil {
			fmt.Println(err)
			continue
		}
		if c.analog {
			err = board.AnalogWrite(c.pin, uint8(c.value))
		} else {
			err = board.DigitalWrite(c.pin, c.value)
		}
		if err != nil {
			log.Fatalln("Write failed:", err)
		}
	}
}
