//go:build wasip1

// Package wasm provides adapters that connect contract code to the seal0 host interface.
package wasm

// seal0 host functions. Output parameters follow the (ptr, len_ptr) convention of internal/abi.

//go:wasmimport seal0 seal_call_chain_extension
func seal_call_chain_extension(funcID, inputPtr, inputLen, outputPtr, outputLenPtr uint32) uint32

//go:wasmimport seal0 seal_caller
func seal_caller(outPtr, outLenPtr uint32)

//go:wasmimport seal0 seal_deposit_event
func seal_deposit_event(topicsPtr, topicsLen, dataPtr, dataLen uint32)

//go:wasmimport seal0 seal_set_storage
func seal_set_storage(keyPtr, valuePtr, valueLen uint32)

//go:wasmimport seal0 seal_get_storage
func seal_get_storage(keyPtr, outPtr, outLenPtr uint32) uint32

//go:wasmimport seal0 seal_input
func seal_input(bufPtr, bufLenPtr uint32)

//go:wasmimport seal0 seal_return
func seal_return(flags, dataPtr, dataLen uint32)

// returnKeyNotFound is the seal_get_storage code for an empty slot.
const returnKeyNotFound = 3
