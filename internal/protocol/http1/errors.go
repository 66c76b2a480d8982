package http1

import (
	"errors"
	"fmt"
)

// ErrMalformed is matched by every *MalformedError via errors.Is.
var ErrMalformed = errors.New("malformed request")

// Kind tells which part of the request failed to match.
type Kind uint8

const (
	KindMethod Kind = iota + 1
	KindProtocol
	KindHeader
)

func (k Kind) String() string {
	switch k {
	case KindMethod:
		return "method"
	case KindProtocol:
		return "protocol"
	case KindHeader:
		return "header"
	default:
		return "unknown"
	}
}

// MalformedError reports the position of the first byte that didn't fit the grammar. The
// offset is relative to the beginning of the request the byte belongs to.
type MalformedError struct {
	Kind   Kind
	Offset int
	Char   byte
}

func malformed(kind Kind, data []byte, offset int) *MalformedError {
	return &MalformedError{
		Kind:   kind,
		Offset: offset,
		Char:   data[offset],
	}
}

func (m *MalformedError) Error() string {
	return fmt.Sprintf("%s: unexpected %q in %s at offset %d", ErrMalformed, m.Char, m.Kind, m.Offset)
}

func (m *MalformedError) Is(target error) bool {
	return target == ErrMalformed
}
