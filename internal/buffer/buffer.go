package buffer

import "io"

// Buffer accumulates bytes received from a stream until they are consumed from the head.
// Bytes are only ever appended at the tail (Fill) and removed from the head (Consume), so
// at any moment the unconsumed region is a sequence of complete messages optionally
// followed by a single incomplete one.
type Buffer struct {
	memory []byte
	begin  int

	// minRead is the least free space at the tail a single Fill call must have.
	minRead int
}

func New(initialSize int) *Buffer {
	return &Buffer{
		memory:  make([]byte, 0, initialSize),
		minRead: max(initialSize/2, 1),
	}
}

// Fill performs exactly one Read call into the free space at the tail. Consumed bytes are
// compacted out first if the free space is too scarce, and only if this isn't enough the
// memory grows.
func (b *Buffer) Fill(r io.Reader) (n int, err error) {
	if cap(b.memory)-len(b.memory) < b.minRead {
		b.Compact()

		if cap(b.memory)-len(b.memory) < b.minRead {
			grown := make([]byte, len(b.memory), 2*cap(b.memory)+b.minRead)
			copy(grown, b.memory)
			b.memory = grown
		}
	}

	n, err = r.Read(b.memory[len(b.memory):cap(b.memory)])
	b.memory = b.memory[:len(b.memory)+n]

	return n, err
}

// Unconsumed returns the bytes, which are received but not consumed yet. The returned slice
// is valid only until the next Fill, Consume or Compact call.
func (b *Buffer) Unconsumed() []byte {
	return b.memory[b.begin:]
}

// Len returns the length of the unconsumed region.
func (b *Buffer) Len() int {
	return len(b.memory) - b.begin
}

// Consume discards exactly n bytes from the head. Consuming nothing or more than there is
// means the caller lost track of the buffer state, therefore it panics.
func (b *Buffer) Consume(n int) {
	if n <= 0 || n > b.Len() {
		panic("buffer: bad consume length")
	}

	b.begin += n
	if b.begin == len(b.memory) {
		b.Clear()
	}
}

// Compact moves the unconsumed region to the beginning of the memory. Costs O(Len()).
func (b *Buffer) Compact() {
	if b.begin == 0 {
		return
	}

	n := copy(b.memory, b.memory[b.begin:])
	b.memory = b.memory[:n]
	b.begin = 0
}

// Clear drops everything, keeping the memory for future reuse.
func (b *Buffer) Clear() {
	b.begin = 0
	b.memory = b.memory[:0]
}
