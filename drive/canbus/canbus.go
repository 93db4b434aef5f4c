// Package canbus drives the wheel motors over a CAN bus. Each output is sent
// as a single two byte frame: left duty then right duty, both signed.
package canbus

import (
	"context"
	"fmt"
	"io"

	"github.com/mastercactapus/wheelbase/drive"
	"go.einride.tech/can"
	"go.einride.tech/can/pkg/socketcan"
)

// DefaultFrameID is the standard identifier the motor controller listens on.
const DefaultFrameID = 0x120

// A Transmitter sends frames on a bus.
type Transmitter interface {
	TransmitFrame(context.Context, can.Frame) error
}

func EncodeOutput(id uint32, out drive.Output) can.Frame {
	f := can.Frame{ID: id, Length: 2}
	f.Data[0] = byte(out.Left)
	f.Data[1] = byte(out.Right)
	return f
}

// DecodeOutput is the inverse of EncodeOutput.
func DecodeOutput(f can.Frame) (drive.Output, error) {
	if f.Length != 2 {
		return drive.Output{}, fmt.Errorf("frame 0x%X: want 2 data bytes, got %d", f.ID, f.Length)
	}
	return drive.Output{Left: int8(f.Data[0]), Right: int8(f.Data[1])}, nil
}

type Adapter struct {
	tx     Transmitter
	id     uint32
	closer io.Closer
}

var _ drive.Adapter = &Adapter{}

// NewAdapter sends frames with the given id through tx. If tx implements
// io.Closer it is closed by Close.
func NewAdapter(tx Transmitter, id uint32) *Adapter {
	a := &Adapter{tx: tx, id: id}
	if c, ok := tx.(io.Closer); ok {
		a.closer = c
	}
	return a
}

// Dial opens a SocketCAN interface such as "can0" or "vcan0".
func Dial(ctx context.Context, iface string, id uint32) (*Adapter, error) {
	conn, err := socketcan.DialContext(ctx, "can", iface)
	if err != nil {
		return nil, fmt.Errorf("socketcan dial: %w", err)
	}
	a := NewAdapter(socketcan.NewTransmitter(conn), id)
	a.closer = conn
	return a, nil
}

func (a *Adapter) SetWheels(ctx context.Context, out drive.Output) error {
	f := EncodeOutput(a.id, out)
	if err := f.Validate(); err != nil {
		return err
	}
	return a.tx.TransmitFrame(ctx, f)
}

func (a *Adapter) Close() error {
	if a.closer != nil {
		return a.closer.Close()
	}
	return nil
}
