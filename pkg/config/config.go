package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env"
	yaml "gopkg.in/yaml.v2"

	"github.com/PedroRendeiro/arduino-robot/pkg/drivemode"
)

type Config struct {
	Board  BoardConfig      `yaml:"board"`
	Tilt   TiltConfig       `yaml:"tilt"`
	Wiring drivemode.Wiring `yaml:"wiring"`
}

// BoardConfig locates the serial link to the car.  With a Bluetooth
// serial module the device is the bound RFCOMM node.
type BoardConfig struct {
	Device   string `yaml:"device" env:"ROBOT_BOARD_DEVICE"`
	BaudRate int    `yaml:"baud_rate"`
}

type TiltConfig struct {
	Device         string `yaml:"device" env:"ROBOT_TILT_DEVICE"`
	BaudRate       int    `yaml:"baud_rate"`
	IntervalMillis int    `yaml:"interval_millis"`
}

func (t TiltConfig) Interval() time.Duration {
	return time.Duration(t.IntervalMillis) * time.Millisecond
}

func Default() Config {
	return Config{
		Board: BoardConfig{
			Device:   "/dev/rfcomm0",
			BaudRate: 9600,
		},
		Tilt: TiltConfig{
			Device:         "/dev/ttyACM0",
			BaudRate:       115200,
			IntervalMillis: 100,
		},
		Wiring: drivemode.DefaultWiring(),
	}
}

// Load reads the YAML config file, then applies any environment
// overrides.  A missing file just means the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("failed to read %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := env.Parse(&cfg.Board); err != nil {
		return cfg, err
	}
	if err := env.Parse(&cfg.Tilt); err != nil {
		return cfg, err
	}
	return cfg, nil
}
