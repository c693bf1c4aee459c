package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PedroRendeiro/arduino-robot/pkg/arduino"
	"github.com/PedroRendeiro/arduino-robot/pkg/config"
	"github.com/PedroRendeiro/arduino-robot/pkg/drivemode"
	"github.com/PedroRendeiro/arduino-robot/pkg/tilt"
)

func main() {
	fmt.Print("---- Arduino robot ----\n\n")

	configFile := flag.String("config", "robot.yaml", "path to the config file")
	dummyBoard := flag.Bool("dummy-board", false, "log pin writes instead of opening the car's serial port")
	syntheticTilt := flag.Bool("synthetic-tilt", false, "generate tilt samples instead of reading the sensor")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalln("Failed to load config:", err)
	}

	// Our global context, we cancel it to trigger shutdown.
	ctx, cancel := context.WithCancel(context.Background())

	signals := make(chan os.Signal, 2)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		s := <-signals
		log.Println("Signal: ", s)
		cancel()
	}()

	var board arduino.PinWriter
	if *dummyBoard {
		fmt.Println("Using dummy board")
		board = arduino.Dummy()
	} else {
		b, err := arduino.Connect(cfg.Board.Device, cfg.Board.BaudRate)
		if err != nil {
			log.Fatalln("Failed to open board:", err)
		}
		board = b
	}
	defer board.Close()

	var source tilt.Source
	if *syntheticTilt {
		fmt.Println("Using synthetic tilt source")
		source = tilt.NewSynthetic(cfg.Tilt.Interval())
	} else {
		source, err = tilt.Open(cfg.Tilt.Device, cfg.Tilt.BaudRate, cfg.Tilt.Interval())
		if err != nil {
			log.Fatalln("Failed to open tilt sensor:", err)
		}
	}
	defer source.Close()

	mode := drivemode.New(board, cfg.Wiring, source.Samples())
	fmt.Printf("----- %s -----\n", mode.Name())
	mode.Start(ctx)

	select {
	case <-ctx.Done():
		fmt.Println("Context done, stopping motors and shutting down")
		mode.Stop()
	case <-mode.Done():
		// Sample source gone or the board stopped taking writes.
		fmt.Println("Drive loop finished, shutting down")
		cancel()
	}
	time.Sleep(100 * time.Millisecond)
}
