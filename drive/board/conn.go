package board

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
)

// ErrBoardError is wrapped by errors the board reports with an `error:` reply.
var ErrBoardError = errors.New("board error")

// Conn represents a direct line connection to a motor board.
type Conn struct {
	rw io.ReadWriter

	ackCh    chan error
	bannerCh chan string
	closeCh  chan struct{}
	doneCh   chan struct{}

	closeOnce sync.Once
	wMx       sync.Mutex

	// stale counts abandoned writes whose replies are still due, guarded by wMx.
	stale int
}

// NewConn creates a new Conn using the provided ReadWriter for data and
// starts reading replies in the background.
func NewConn(rw io.ReadWriter) *Conn {
	c := &Conn{
		rw:       rw,
		ackCh:    make(chan error, 1),
		bannerCh: make(chan string, 1),
		closeCh:  make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	go c.readLoop()
	return c
}

// Close will abort any in-progress writes and close the
// underlying ReadWriter, if it implements io.Closer.
func (c *Conn) Close() (err error) {
	c.closeOnce.Do(func() {
		close(c.closeCh)
		if closer, ok := c.rw.(io.Closer); ok {
			err = closer.Close()
		}
	})
	return err
}

func (c *Conn) readLoop() {
	defer close(c.doneCh)
	scan := bufio.NewScanner(c.rw)
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		switch {
		case line == "":
		case line == "ok":
			c.ack(nil)
		case strings.HasPrefix(line, "error:"):
			c.ack(fmt.Errorf("%w: %s", ErrBoardError, strings.TrimSpace(strings.TrimPrefix(line, "error:"))))
		case strings.HasPrefix(line, bannerPrefix):
			select {
			case <-c.bannerCh:
			default:
			}
			c.bannerCh <- line
		default:
			log.Println("ignoring board output:", line)
		}
	}
	select {
	case <-c.closeCh:
	default:
		if err := scan.Err(); err != nil {
			log.Println("ERROR: read from board:", err)
		}
	}
}

func (c *Conn) ack(err error) {
	select {
	case c.ackCh <- err:
	case <-c.closeCh:
	}
}

// WriteLine sends line to the board and waits for it to be acknowledged.
//
// The board replies in order, so replies to writes abandoned by an earlier
// ctx expiry are consumed before the reply to line.
func (c *Conn) WriteLine(ctx context.Context, line string) error {
	c.wMx.Lock()
	defer c.wMx.Unlock()

	select {
	case <-c.closeCh:
		return io.ErrClosedPipe
	default:
	}

	_, err := io.WriteString(c.rw, line+"\n")
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			c.stale++
			return ctx.Err()
		case <-c.closeCh:
			return io.ErrClosedPipe
		case <-c.doneCh:
			return io.ErrUnexpectedEOF
		case err = <-c.ackCh:
			if c.stale > 0 {
				c.stale--
				if err != nil {
					log.Println("ERROR: late reply from board:", err)
				}
				continue
			}
			return err
		}
	}
}
