package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mastercactapus/wheelbase/drive"
	"github.com/mastercactapus/wheelbase/drive/board"
	"github.com/mastercactapus/wheelbase/drive/canbus"
	"github.com/mastercactapus/wheelbase/sim"
	"github.com/tarm/serial"
)

const handshakeTimeout = 3 * time.Second

func openAdapter(ctx context.Context, cfg *Config) (drive.Adapter, error) {
	switch cfg.Adapter {
	case "sim":
		return sim.NewBase(), nil
	case "serial":
		port, err := serial.OpenPort(&serial.Config{Name: cfg.Serial.Port, Baud: cfg.Serial.Baud})
		if err != nil {
			return nil, fmt.Errorf("open serial port '%s': %w", cfg.Serial.Port, err)
		}
		a := board.NewAdapter(port)

		hCtx, cancel := context.WithTimeout(ctx, handshakeTimeout)
		defer cancel()
		v, err := a.Handshake(hCtx, cfg.Serial.Version)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("handshake: %w", err)
		}
		log.Printf("Connected to board firmware %s on %s", v, cfg.Serial.Port)
		return a, nil
	case "can":
		a, err := canbus.Dial(ctx, cfg.CAN.Interface, cfg.CAN.FrameID)
		if err != nil {
			return nil, err
		}
		log.Printf("Sending motor frames 0x%X on %s", cfg.CAN.FrameID, cfg.CAN.Interface)
		return a, nil
	}

	return nil, fmt.Errorf("unknown adapter '%s'", cfg.Adapter)
}
