package dummy

import (
	"io"
	"net"

	"github.com/indigo-web/urlecho/transport"
)

var _ transport.Client = new(Client)

// Client replays the pieces it was initialised with, one piece per read, and tracks all the
// written data. Pieces are replayed the given number of rounds, after which the read error
// is returned (io.EOF unless set otherwise).
type Client struct {
	data     [][]byte
	pointer  int
	rounds   int
	round    int
	tmp      []byte
	readErr  error
	writeErr error
	written  []byte
	writes   int
}

func NewMockClient(data ...[]byte) *Client {
	return &Client{
		data:    data,
		rounds:  1,
		readErr: io.EOF,
	}
}

// Rounds sets how many times the pieces are replayed. Zero means infinitely.
func (c *Client) Rounds(n int) *Client {
	c.rounds = n
	return c
}

// FailRead makes the client return err instead of io.EOF once the data is over.
func (c *Client) FailRead(err error) *Client {
	c.readErr = err
	return c
}

// FailWrite makes every write fail with err.
func (c *Client) FailWrite(err error) *Client {
	c.writeErr = err
	return c
}

func (c *Client) Read(b []byte) (n int, err error) {
	if len(c.tmp) == 0 {
		if c.pointer >= len(c.data) {
			c.round++
			if len(c.data) == 0 || (c.rounds > 0 && c.round >= c.rounds) {
				return 0, c.readErr
			}

			c.pointer = 0
		}

		c.tmp = c.data[c.pointer]
		c.pointer++
	}

	n = copy(b, c.tmp)
	c.tmp = c.tmp[n:]

	return n, nil
}

func (c *Client) Write(p []byte) (int, error) {
	if c.writeErr != nil {
		return 0, c.writeErr
	}

	c.written = append(c.written, p...)
	c.writes++

	return len(p), nil
}

func (*Client) Remote() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1)}
}

// Written returns all the data written so far.
func (c *Client) Written() string {
	return string(c.written)
}

// Writes returns the number of successful Write calls.
func (c *Client) Writes() int {
	return c.writes
}
