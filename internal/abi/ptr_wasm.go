//go:build wasip1

package abi

import "unsafe"

// Ptr returns the linear memory offset of b. Empty slices map to 0.
func Ptr(b []byte) uint32 {
	if len(b) == 0 {
		return 0
	}
	//nolint:gosec // G103: Valid unsafe.Pointer use for WASM linear memory access
	return uint32(uintptr(unsafe.Pointer(&b[0])))
}

// Len returns len(b) as a uint32.
func Len(b []byte) uint32 {
	return uint32(len(b))
}

// Ptr returns the offset of the buffer data.
func (b *Buffer) Ptr() uint32 {
	return Ptr(b.data)
}

// LenPtr returns the offset of the length cell.
func (b *Buffer) LenPtr() uint32 {
	//nolint:gosec // G103: Valid unsafe.Pointer use for WASM linear memory access
	return uint32(uintptr(unsafe.Pointer(&b.length)))
}
