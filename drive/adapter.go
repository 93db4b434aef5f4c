package drive

import "context"

// Output is the signed duty, in percent, applied to each side of the base.
type Output struct {
	Left  int8 `json:"left"`
	Right int8 `json:"right"`
}

// An Adapter represents the minimal motor driver interface.
type Adapter interface {
	SetWheels(context.Context, Output) error
	Close() error
}
