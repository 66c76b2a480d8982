package transport

import "net"

type Transport interface {
	Bind(addr string) error
	// Listen runs the accept loop, calling cb in a separate goroutine for each connection.
	// Returns nil if stopped via Stop.
	Listen(cb func(conn net.Conn)) error
	// Addr returns the address the transport is actually bound to.
	Addr() net.Addr
	Stop()
	Close()
}
