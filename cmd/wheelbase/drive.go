package main

import (
	"context"

	"github.com/mastercactapus/wheelbase/drive"
	"github.com/mastercactapus/wheelbase/wcode"
)

type Drive interface {
	Run(context.Context, wcode.Reader) (int, error)
	Status() drive.Status
	State() <-chan drive.Status
}

var _ Drive = &drive.Drive{}

// parseError marks bad input, as opposed to a failure to reach the motors.
type parseError struct{ error }

func (err parseError) Unwrap() error { return err.error }

// runText parses and checks every line of data before running any of it.
func runText(ctx context.Context, d Drive, data string) (drive.Status, error) {
	blocks, err := wcode.Parse(data)
	if err != nil {
		return drive.Status{}, parseError{err}
	}
	for _, b := range blocks {
		_, err = b.Commands()
		if err != nil {
			return drive.Status{}, parseError{err}
		}
	}

	_, err = d.Run(ctx, &wcode.BlocksReader{Blocks: blocks})
	if err != nil {
		return drive.Status{}, err
	}
	return d.Status(), nil
}
