// Package sandbox executes the demonstration contract off-chain.
//
// Two executors share one host-side state (an exttest.Environment plus an exttest.Host):
//
//   - WasmExecutor runs a compiled contract (GOOS=wasip1 GOARCH=wasm -buildmode=c-shared)
//     under wazero, exposing the seal0 host functions the contract imports.
//   - NativeExecutor runs the contract package directly, for fast scenario runs.
//
// Both roll back storage and ledger changes when a call reverts or traps, and serialize
// calls with a mutex. Runner drives either one through a scenario file.
package sandbox
