package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Masterminds/semver"
	"github.com/caarlos0/env/v11"
	"github.com/mastercactapus/wheelbase/drive"
	"github.com/mastercactapus/wheelbase/drive/board"
	"github.com/mastercactapus/wheelbase/drive/canbus"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Addr    string `yaml:"addr" env:"ADDR"`
	Adapter string `yaml:"adapter" env:"ADAPTER"`

	Serial SerialConfig `yaml:"serial" envPrefix:"SERIAL_"`
	CAN    CANConfig    `yaml:"can" envPrefix:"CAN_"`
	Drive  DriveConfig  `yaml:"drive" envPrefix:"DRIVE_"`
	Log    LogConfig    `yaml:"log" envPrefix:"LOG_"`
}

type SerialConfig struct {
	Port string `yaml:"port" env:"PORT"`
	Baud int    `yaml:"baud" env:"BAUD"`
	// Version is the semver constraint the board firmware must satisfy.
	Version string `yaml:"version" env:"VERSION"`
}

type CANConfig struct {
	Interface string `yaml:"interface" env:"INTERFACE"`
	FrameID   uint32 `yaml:"frame_id" env:"FRAME_ID"`
}

type DriveConfig struct {
	InvertLeft  bool          `yaml:"invert_left" env:"INVERT_LEFT"`
	InvertRight bool          `yaml:"invert_right" env:"INVERT_RIGHT"`
	Timeout     time.Duration `yaml:"timeout" env:"TIMEOUT"`
}

type LogConfig struct {
	File       string `yaml:"file" env:"FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb" env:"MAX_SIZE_MB"`
	MaxBackups int    `yaml:"max_backups" env:"MAX_BACKUPS"`
}

const envPrefix = "WHEELBASE_"

func defaultConfig() Config {
	return Config{
		Addr:    ":9091",
		Adapter: "sim",
		Serial: SerialConfig{
			Port:    "/dev/ttyUSB0",
			Baud:    115200,
			Version: board.DefaultConstraint,
		},
		CAN: CANConfig{
			Interface: "can0",
			FrameID:   canbus.DefaultFrameID,
		},
		Drive: DriveConfig{Timeout: time.Second},
		Log:   LogConfig{MaxSizeMB: 10, MaxBackups: 3},
	}
}

// loadConfig reads the defaults, then the YAML file at path (if any), then
// WHEELBASE_* environment variables.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		err = yaml.UnmarshalStrict(data, &cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config '%s': %w", path, err)
		}
	}

	err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix})
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return &cfg, nil
}

func (cfg *Config) Validate() error {
	if cfg.Addr == "" {
		return errors.New("addr is required")
	}
	switch cfg.Adapter {
	case "sim":
	case "serial":
		if cfg.Serial.Port == "" {
			return errors.New("serial.port is required")
		}
		if cfg.Serial.Baud <= 0 {
			return fmt.Errorf("serial.baud: invalid value %d", cfg.Serial.Baud)
		}
		if _, err := semver.NewConstraint(cfg.Serial.Version); err != nil {
			return fmt.Errorf("serial.version: %w", err)
		}
	case "can":
		if cfg.CAN.Interface == "" {
			return errors.New("can.interface is required")
		}
		if cfg.CAN.FrameID > 0x7ff {
			return fmt.Errorf("can.frame_id: 0x%X is not a standard identifier", cfg.CAN.FrameID)
		}
	default:
		return fmt.Errorf("unknown adapter '%s'", cfg.Adapter)
	}
	if cfg.Drive.Timeout < 0 {
		return errors.New("drive.timeout must not be negative")
	}
	return nil
}

func (cfg DriveConfig) options() drive.Options {
	return drive.Options{
		InvertLeft:  cfg.InvertLeft,
		InvertRight: cfg.InvertRight,
		Timeout:     cfg.Timeout,
	}
}
