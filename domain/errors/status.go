package errors

// StatusOutcome is the three-way classification of an extension status code.
type StatusOutcome int

const (
	// StatusSuccess is status code 0.
	StatusSuccess StatusOutcome = iota
	// StatusFail is status code 1, the declared failure.
	StatusFail
	// StatusUnknown is any other code. The contract cannot represent it.
	StatusUnknown
)

func (o StatusOutcome) String() string {
	switch o {
	case StatusSuccess:
		return "success"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// DecodeStatus classifies a status code. It is total and never panics.
func DecodeStatus(code uint32) StatusOutcome {
	switch code {
	case 0:
		return StatusSuccess
	case 1:
		return StatusFail
	default:
		return StatusUnknown
	}
}

// FromStatusCode converts the status of a fallible extension call into an error:
// nil for 0, ErrFail for 1. Any other code panics with a *ProtocolViolation.
func FromStatusCode(funcID, code uint32) error {
	switch DecodeStatus(code) {
	case StatusSuccess:
		return nil
	case StatusFail:
		return ErrFail
	default:
		panic(&ProtocolViolation{
			FuncID: funcID,
			Status: code,
			Reason: "encountered unknown status code",
		})
	}
}
