//go:build wasip1

package log

import (
	"github.com/nftmart-dev/nftmart-contract-sdk/internal/abi"
)

// seal_debug_message returns 0 when the host accepted the message. Hosts that do not
// collect debug output return a non-zero code, which is ignored.
//
//go:wasmimport seal0 seal_debug_message
//nolint:revive // intentional snake_case to match WASM import convention
func seal_debug_message(strPtr, strLen uint32) uint32

func (h *DebugHandler) emit(line []byte) error {
	_ = seal_debug_message(abi.Ptr(line), abi.Len(line))
	return nil
}

func init() {
	Install()
}
