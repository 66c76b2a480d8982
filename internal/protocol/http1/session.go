package http1

import (
	"errors"
	"fmt"
	"io"

	"github.com/indigo-web/urlecho/config"
	"github.com/indigo-web/urlecho/internal/buffer"
	"github.com/indigo-web/urlecho/transport"
)

// Session serves a single connection. It owns both the read and the response buffers, so
// it must never be shared between goroutines.
type Session struct {
	client transport.Client
	buff   *buffer.Buffer
	resp   []byte
}

func NewSession(cfg *config.Config, client transport.Client) *Session {
	return &Session{
		client: client,
		buff:   buffer.New(cfg.NET.ReadBufferSize),
		resp:   make([]byte, 0, cfg.NET.WriteBufferSize),
	}
}

// Serve runs until the peer closes the connection, which results in nil, or until the first
// malformed request or I/O error, which are returned. A request being incomplete at the
// moment the peer closes the connection is silently dropped.
func (s *Session) Serve() error {
	for {
		n, err := s.buff.Fill(s.client)
		if n > 0 {
			if err := s.drain(); err != nil {
				return err
			}

			if err := s.flush(); err != nil {
				return err
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return fmt.Errorf("read: %w", err)
		}
	}
}

// drain responds to every complete request in the read buffer.
func (s *Session) drain() error {
	for {
		data := s.buff.Unconsumed()
		state, request, err := Scan(data)

		switch state {
		case Pending:
			return nil
		case Complete:
			s.resp = AppendResponse(s.resp, request.URL.Of(data))
			s.buff.Consume(request.Length)
		case Error:
			return err
		default:
			panic(fmt.Sprintf("BUG: got unexpected scanner state: %s", state))
		}
	}
}

// flush writes all the accumulated responses at once and compacts the read buffer.
func (s *Session) flush() error {
	if len(s.resp) > 0 {
		if _, err := s.client.Write(s.resp); err != nil {
			return fmt.Errorf("write: %w", err)
		}

		s.resp = s.resp[:0]
	}

	s.buff.Compact()

	return nil
}
