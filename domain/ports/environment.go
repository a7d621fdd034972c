package ports

import "github.com/nftmart-dev/nftmart-contract-sdk/domain/entities"

// Environment is the part of the host environment a contract uses besides the chain extension.
type Environment interface {
	// Caller returns the account that submitted the current call.
	Caller() entities.AccountID

	// DepositEvent publishes an event with the given topics and SCALE-encoded body.
	DepositEvent(topics []entities.Hash, data []byte)

	// GetStorage reads the value stored under key.
	GetStorage(key entities.Hash) ([]byte, bool)

	// SetStorage writes value under key.
	SetStorage(key entities.Hash, value []byte)

	// Input returns the call data of the current call (selector followed by arguments).
	Input() []byte

	// Return ends the call with the given flags and SCALE-encoded output.
	Return(flags entities.ReturnFlags, data []byte)
}
