package entities

// ReturnFlags are the flags a contract passes to seal_return.
type ReturnFlags uint32

// FlagRevert asks the host to discard every state change made by the call.
const FlagRevert ReturnFlags = 1

// Reverted reports whether the revert flag is set.
func (f ReturnFlags) Reverted() bool {
	return f&FlagRevert != 0
}

// EventRecord is an event deposited by a contract: its topics and SCALE-encoded body.
type EventRecord struct {
	Topics []Hash `json:"topics"`
	Data   []byte `json:"data"`
}

// ExecResult is the outcome of a single contract entry point execution.
type ExecResult struct {
	// Data is the SCALE-encoded return value passed to seal_return.
	Data []byte `json:"data,omitempty"`

	// Events lists events deposited during the call, in order.
	Events []EventRecord `json:"events,omitempty"`

	// Debug holds the debug messages emitted by the contract during the call.
	Debug string `json:"debug,omitempty"`

	// Error is set when the call trapped instead of returning.
	Error *ErrorDetail `json:"error,omitempty"`

	// Flags are the return flags passed to seal_return.
	Flags ReturnFlags `json:"flags"`
}

// IsSuccess reports whether the call returned without trapping or reverting.
func (r ExecResult) IsSuccess() bool {
	return r.Error == nil && !r.Flags.Reverted()
}

// IsReverted reports whether the call returned with the revert flag.
func (r ExecResult) IsReverted() bool {
	return r.Error == nil && r.Flags.Reverted()
}

// IsTrapped reports whether the call aborted.
func (r ExecResult) IsTrapped() bool {
	return r.Error != nil
}
