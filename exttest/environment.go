package exttest

import (
	"sync"

	"github.com/nftmart-dev/nftmart-contract-sdk/domain/entities"
	"github.com/nftmart-dev/nftmart-contract-sdk/domain/ports"
	"github.com/nftmart-dev/nftmart-contract-sdk/hostfuncs"
)

var _ ports.Environment = (*Environment)(nil)

// Environment is an in-memory ports.Environment.
type Environment struct {
	storage  map[entities.Hash][]byte
	debug    *hostfuncs.BoundedBuffer
	input    []byte
	data     []byte
	events   []entities.EventRecord
	mu       sync.Mutex
	flags    entities.ReturnFlags
	caller   entities.AccountID
	returned bool
}

// NewEnvironment creates an empty environment with the given caller.
func NewEnvironment(caller entities.AccountID) *Environment {
	return &Environment{
		caller:  caller,
		storage: make(map[entities.Hash][]byte),
		debug:   hostfuncs.NewBoundedBuffer(hostfuncs.DefaultMaxDebugSize),
	}
}

// Begin prepares the environment for a new call: it sets caller and input and clears the
// previous call's events, return value and debug output. Storage is kept.
func (e *Environment) Begin(caller entities.AccountID, input []byte) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.caller = caller
	e.input = append([]byte(nil), input...)
	e.events = nil
	e.data = nil
	e.flags = 0
	e.returned = false
	e.debug.Reset()
}

func (e *Environment) Caller() entities.AccountID {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.caller
}

func (e *Environment) DepositEvent(topics []entities.Hash, data []byte) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, entities.EventRecord{
		Topics: append([]entities.Hash(nil), topics...),
		Data:   append([]byte(nil), data...),
	})
}

func (e *Environment) GetStorage(key entities.Hash) ([]byte, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	v, ok := e.storage[key]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), v...), true
}

func (e *Environment) SetStorage(key entities.Hash, value []byte) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.storage[key] = append([]byte(nil), value...)
}

func (e *Environment) Input() []byte {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]byte(nil), e.input...)
}

func (e *Environment) Return(flags entities.ReturnFlags, data []byte) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.flags = flags
	e.data = append([]byte(nil), data...)
	e.returned = true
}

// DebugMessage appends a contract debug message.
func (e *Environment) DebugMessage(msg []byte) {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, _ = e.debug.Write(msg)
}

// Events returns the events deposited since the last Begin.
func (e *Environment) Events() []entities.EventRecord {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]entities.EventRecord(nil), e.events...)
}

// Returned reports the flags and data passed to Return, and whether Return was called.
func (e *Environment) Returned() (entities.ReturnFlags, []byte, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.flags, append([]byte(nil), e.data...), e.returned
}

// Debug returns the debug output collected since the last Begin.
func (e *Environment) Debug() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.debug.String()
}

// Snapshot copies the storage so a reverted call can be rolled back with Restore.
func (e *Environment) Snapshot() map[entities.Hash][]byte {
	e.mu.Lock()
	defer e.mu.Unlock()
	snap := make(map[entities.Hash][]byte, len(e.storage))
	for k, v := range e.storage {
		snap[k] = v
	}
	return snap
}

// Restore replaces the storage with a snapshot.
func (e *Environment) Restore(snap map[entities.Hash][]byte) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.storage = make(map[entities.Hash][]byte, len(snap))
	for k, v := range snap {
		e.storage[k] = v
	}
}
