package transport

import (
	"io"
	"net"
)

// Client is the connection as the protocol sees it. No deadlines are ever set, so a read
// blocks until either data arrives or the peer goes away. Closing the connection is up to
// the transport, which does it as soon as the connection callback returns.
type Client interface {
	io.ReadWriter
	Remote() net.Addr
}

type client struct {
	conn net.Conn
}

func NewClient(conn net.Conn) Client {
	return client{conn: conn}
}

func (c client) Read(b []byte) (int, error) {
	return c.conn.Read(b)
}

// Write writes the data into the underlying connection. net.Conn guarantees that either
// all the data is written or an error is returned.
func (c client) Write(b []byte) (int, error) {
	return c.conn.Write(b)
}

// Remote returns the remote address of the connection.
func (c client) Remote() net.Addr {
	return c.conn.RemoteAddr()
}
