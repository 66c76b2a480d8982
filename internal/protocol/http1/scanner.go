package http1

import (
	"bytes"

	"github.com/indigo-web/utils/uf"
)

const (
	methodToken   = "GET "
	protocolToken = " HTTP/1.1\r\n"
	crlf          = "\r\n"
)

// Span is a byte range relative to the beginning of the scanned data. It doesn't hold the
// data itself, so it stays meaningful only as long as the scanned data isn't consumed.
type Span struct {
	Offset, Len int
}

// Of returns the bytes the span covers. The data must be the same Scan was called with.
func (s Span) Of(data []byte) []byte {
	return data[s.Offset : s.Offset+s.Len]
}

// Request is a view of a single complete request at the beginning of the scanned data.
type Request struct {
	// Length is the number of bytes the request takes, including the terminating blank line.
	Length int
	URL    Span
}

// Scan recognizes a single request at the beginning of data. It has no side effects and
// keeps no state between calls, so partially received requests are simply scanned again
// from the beginning once more bytes arrive.
//
// A truncated literal results in Pending, whereas a mismatching byte results in Error with
// a *MalformedError, no matter how much data is available.
func Scan(data []byte) (State, Request, error) {
	offset, state, err := expect(data, 0, methodToken, KindMethod)
	if state != Complete {
		return state, Request{}, err
	}

	urlLen := bytes.IndexByte(data[offset:], ' ')
	if urlLen == -1 {
		return Pending, Request{}, nil
	}

	url := Span{Offset: offset, Len: urlLen}

	offset, state, err = expect(data, offset+urlLen, protocolToken, KindProtocol)
	if state != Complete {
		return state, Request{}, err
	}

	offset, state, err = skipHeaders(data, offset)
	if state != Complete {
		return state, Request{}, err
	}

	// skipHeaders stops only at a complete blank line
	return Complete, Request{Length: offset + len(crlf), URL: url}, nil
}

// skipHeaders walks over header lines without looking into them and returns the offset of
// the blank line terminating the headers. The blank line is validated, but left for the
// caller to consume.
func skipHeaders(data []byte, offset int) (int, State, error) {
	for {
		line := data[offset:]

		switch {
		case len(line) == 0:
			return offset, Pending, nil
		case line[0] == '\r':
			if len(line) == 1 {
				return offset, Pending, nil
			}

			if line[1] != '\n' {
				return offset, Error, malformed(KindHeader, data, offset+1)
			}

			return offset, Complete, nil
		}

		sep := -1

	colon:
		for i := 0; i < len(line); i++ {
			switch line[i] {
			case '\r':
				// the line is over, but it's neither blank nor a header
				return offset, Error, malformed(KindHeader, data, offset+i)
			case ':':
				if i+1 == len(line) {
					return offset, Pending, nil
				}

				if line[i+1] == ' ' {
					sep = i
					break colon
				}
			}
		}

		if sep == -1 {
			return offset, Pending, nil
		}

		valueStart := sep + len(": ")
		cr := bytes.IndexByte(line[valueStart:], '\r')
		if cr == -1 {
			return offset, Pending, nil
		}

		lf := valueStart + cr + 1
		switch {
		case lf == len(line):
			return offset, Pending, nil
		case line[lf] != '\n':
			return offset, Error, malformed(KindHeader, data, offset+lf)
		}

		offset += lf + 1
	}
}

// expect matches the literal at the offset. Complete is returned along with the offset right
// after the literal.
func expect(data []byte, offset int, literal string, kind Kind) (int, State, error) {
	if len(data)-offset >= len(literal) && uf.B2S(data[offset:offset+len(literal)]) == literal {
		return offset + len(literal), Complete, nil
	}

	// either truncated or mismatching. Find out which exactly
	for i := 0; i < len(literal); i++ {
		if offset+i == len(data) {
			return offset, Pending, nil
		}

		if data[offset+i] != literal[i] {
			return offset, Error, malformed(kind, data, offset+i)
		}
	}

	panic("unreachable code")
}
