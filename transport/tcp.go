package transport

import (
	"net"
	"sync/atomic"
)

type TCP struct {
	l    net.Listener
	stop *atomic.Bool
}

func NewTCP() *TCP {
	return &TCP{
		stop: new(atomic.Bool),
	}
}

func (t *TCP) Bind(addr string) error {
	tcpaddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return err
	}

	t.l, err = net.ListenTCP("tcp", tcpaddr)
	return err
}

// Listen accepts connections one by one, never waiting for any of them to be served. The
// connection is closed as soon as cb returns.
func (t *TCP) Listen(cb func(conn net.Conn)) error {
	for {
		conn, err := t.l.Accept()
		if err != nil {
			if t.stop.Load() {
				return nil
			}

			return err
		}

		go func(conn net.Conn) {
			cb(conn)
			_ = conn.Close()
		}(conn)
	}
}

func (t *TCP) Addr() net.Addr {
	return t.l.Addr()
}

// Stop makes the accept loop exit silently as soon as the listener is closed. The
// connections already accepted aren't affected.
func (t *TCP) Stop() {
	t.stop.Store(true)
}

func (t *TCP) Close() {
	if t.l != nil {
		_ = t.l.Close()
	}
}
