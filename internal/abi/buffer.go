// Package abi manages the guest side of the seal0 buffer convention.
//
// Output parameters are passed to the host as a (ptr, len_ptr) pair: on entry the length
// cell holds the buffer capacity, on return it holds the number of bytes written.
package abi

import "fmt"

// ScratchSize is the capacity of the shared scratch buffer. It bounds storage values,
// call input and chain extension output.
const ScratchSize = 16 * 1024

// Buffer is an output buffer plus its length cell.
type Buffer struct {
	data   []byte
	length uint32
}

// NewBuffer returns a buffer with the given capacity.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{data: make([]byte, capacity)}
}

var scratch = NewBuffer(ScratchSize)

// Scratch returns the shared scratch buffer, reset to full capacity.
// Contracts are single-threaded; callers must copy out with Bytes before the next host call.
func Scratch() *Buffer {
	scratch.Reset()
	return scratch
}

// Reset sets the length cell back to the buffer capacity.
func (b *Buffer) Reset() {
	b.length = uint32(len(b.data))
}

// Cap returns the buffer capacity.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// SetLen records the number of bytes written. Used when the host side is simulated.
func (b *Buffer) SetLen(n uint32) {
	b.length = n
}

// Raw exposes the full backing slice for writers that fill it directly.
func (b *Buffer) Raw() []byte {
	return b.data
}

// Bytes copies the written prefix out of the buffer.
// A length beyond capacity means the host violated the convention.
func (b *Buffer) Bytes() []byte {
	if int(b.length) > len(b.data) {
		panic(fmt.Sprintf("abi: host wrote %d bytes into a %d byte buffer", b.length, len(b.data)))
	}
	out := make([]byte, b.length)
	copy(out, b.data[:b.length])
	return out
}
