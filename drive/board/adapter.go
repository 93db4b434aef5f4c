package board

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Masterminds/semver"
	"github.com/mastercactapus/wheelbase/drive"
)

// ErrIncompatibleVersion is returned by Handshake when the board firmware
// does not satisfy the requested constraint.
var ErrIncompatibleVersion = errors.New("incompatible board firmware")

// DefaultConstraint is the firmware range this host speaks to.
const DefaultConstraint = "^1.0.0"

type Adapter struct {
	*Conn
}

var _ drive.Adapter = &Adapter{}

func NewAdapter(rw io.ReadWriter) *Adapter {
	return &Adapter{Conn: NewConn(rw)}
}

// Handshake requests the firmware banner and checks its version against
// constraint.
func (a *Adapter) Handshake(ctx context.Context, constraint string) (*semver.Version, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, err
	}

	err = a.WriteLine(ctx, "V")
	if err != nil {
		return nil, err
	}

	var line string
	select {
	case line = <-a.bannerCh:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	v, err := parseBanner(line)
	if err != nil {
		return nil, err
	}
	if !c.Check(v) {
		return v, fmt.Errorf("%w: got %s, require %s", ErrIncompatibleVersion, v, constraint)
	}

	return v, nil
}

// SetWheels sends `M<left>,<right>` and waits for the board to accept it.
func (a *Adapter) SetWheels(ctx context.Context, out drive.Output) error {
	return a.WriteLine(ctx, fmt.Sprintf("M%d,%d", out.Left, out.Right))
}
