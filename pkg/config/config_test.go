package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Board.Device != "/dev/rfcomm0" {
		t.Fatalf("Default board device = %q", cfg.Board.Device)
	}
	if cfg.Tilt.Interval() != 100*time.Millisecond {
		t.Fatalf("Default sample interval = %v", cfg.Tilt.Interval())
	}
	if cfg.Wiring.DriveSpeed == 0 {
		t.Fatal("Default wiring missing drive speed pin")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "robot.yaml")
	content := []byte(`
board:
  device: /dev/ttyUSB1
  baud_rate: 57600
tilt:
  interval_millis: 50
wiring:
  drive_speed: 11
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Board.Device != "/dev/ttyUSB1" || cfg.Board.BaudRate != 57600 {
		t.Fatalf("Board config = %+v", cfg.Board)
	}
	if cfg.Tilt.Interval() != 50*time.Millisecond {
		t.Fatalf("Sample interval = %v", cfg.Tilt.Interval())
	}
	if cfg.Wiring.DriveSpeed != 11 {
		t.Fatalf("Drive speed pin = %v, expected 11", cfg.Wiring.DriveSpeed)
	}
	// Fields the file doesn't mention keep their defaults.
	if cfg.Tilt.Device != "/dev/ttyACM0" {
		t.Fatalf("Tilt device = %q, expected default", cfg.Tilt.Device)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("ROBOT_BOARD_DEVICE", "/dev/rfcomm3")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Board.Device != "/dev/rfcomm3" {
		t.Fatalf("Board device = %q, expected env override", cfg.Board.Device)
	}
}

func TestLoadBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "robot.yaml")
	if err := os.WriteFile(path, []byte("board: ["), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load of malformed YAML succeeded")
	}
}
