package transport

import (
	"net"
	"sync"
)

// Supervisor owns bound transports and runs their accept loops. The first accept loop
// failing brings all the others down.
type Supervisor struct {
	ts       []boundTransport
	stopch   chan struct{}
	stopOnce *sync.Once
}

func NewSupervisor() *Supervisor {
	return &Supervisor{
		stopch:   make(chan struct{}),
		stopOnce: new(sync.Once),
	}
}

// Add binds the transport. If binding fails, all the transports bound before are closed.
func (s *Supervisor) Add(addr string, transport Transport, cb func(net.Conn)) error {
	if err := transport.Bind(addr); err != nil {
		s.close()
		return err
	}

	s.ts = append(s.ts, boundTransport{
		cb: cb,
		t:  transport,
	})

	return nil
}

// Run blocks until either any of the transports fails, which error is returned, or until
// Stop is called, resulting in nil.
func (s *Supervisor) Run() error {
	if len(s.ts) == 0 {
		return nil
	}

	errch := make(chan error, len(s.ts))

	for _, t := range s.ts {
		go func(t boundTransport) {
			errch <- t.t.Listen(t.cb)
		}(t)
	}

	select {
	case err := <-errch:
		s.shutdown()
		drain(errch, len(s.ts)-1)

		return err
	case <-s.stopch:
		s.shutdown()
		drain(errch, len(s.ts))

		return nil
	}
}

// Stop is non-blocking and may be called any number of times, even before Run.
func (s *Supervisor) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopch)
	})
}

func (s *Supervisor) shutdown() {
	for _, t := range s.ts {
		t.t.Stop()
	}

	s.close()
}

func (s *Supervisor) close() {
	for _, t := range s.ts {
		t.t.Close()
	}
}

type boundTransport struct {
	cb func(conn net.Conn)
	t  Transport
}

func drain(ch <-chan error, n int) {
	for i := 0; i < n; i++ {
		<-ch
	}
}
