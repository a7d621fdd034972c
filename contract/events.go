package contract

import (
	stderrors "errors"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/nftmart-dev/nftmart-contract-sdk/domain/entities"
	"github.com/nftmart-dev/nftmart-contract-sdk/domain/errors"
	"github.com/nftmart-dev/nftmart-contract-sdk/wireformat"
)

// Event is a notification emitted by the contract.
type Event interface {
	// Name is the event name without the contract prefix.
	Name() string
	// Topics returns the indexed topics, the event signature first.
	Topics() []entities.Hash
	// Indexed names the fields published as topics.
	Indexed() []string

	variant() uint8
}

// RandomUpdated is emitted by update with the value just stored.
type RandomUpdated struct {
	New [32]byte `json:"new"`
}

// Name implements Event.
func (RandomUpdated) Name() string { return "RandomUpdated" }

// Topics implements Event.
func (e RandomUpdated) Topics() []entities.Hash {
	return []entities.Hash{
		signatureTopic(e.Name()),
		fieldTopic(e.Name(), "new", e.New),
	}
}

// Indexed implements Event.
func (RandomUpdated) Indexed() []string { return []string{"new"} }

func (RandomUpdated) variant() uint8 { return 0 }

// CreateClassFromContract is emitted once per successful create_class.
type CreateClassFromContract struct {
	Owner   entities.AccountID `json:"owner"`
	ClassID entities.ClassID   `json:"class_id"`
}

// Name implements Event.
func (CreateClassFromContract) Name() string { return "CreateClassFromContract" }

// Topics implements Event.
func (e CreateClassFromContract) Topics() []entities.Hash {
	return []entities.Hash{
		signatureTopic(e.Name()),
		fieldTopic(e.Name(), "owner", e.Owner),
	}
}

// Indexed implements Event.
func (CreateClassFromContract) Indexed() []string { return []string{"owner"} }

func (CreateClassFromContract) variant() uint8 { return 1 }

// EventTypes returns a zero value of every event, in variant order.
func EventTypes() []Event {
	return []Event{RandomUpdated{}, CreateClassFromContract{}}
}

// EncodeEvent returns the event payload: the variant index followed by every field.
func EncodeEvent(ev Event) []byte {
	return append([]byte{ev.variant()}, wireformat.MustEncode(ev)...)
}

// DecodeEvent decodes a payload produced by EncodeEvent.
func DecodeEvent(data []byte) (Event, error) {
	if len(data) == 0 {
		return nil, &errors.WireFormatError{Operation: "decode", Type: "contract.Event", Err: stderrors.New("empty event payload")}
	}
	switch data[0] {
	case RandomUpdated{}.variant():
		var ev RandomUpdated
		if err := wireformat.DecodeExact(data[1:], &ev); err != nil {
			return nil, err
		}
		return ev, nil
	case CreateClassFromContract{}.variant():
		var ev CreateClassFromContract
		if err := wireformat.DecodeExact(data[1:], &ev); err != nil {
			return nil, err
		}
		return ev, nil
	default:
		return nil, &errors.WireFormatError{Operation: "decode", Type: "contract.Event", Err: fmt.Errorf("unknown event variant %d", data[0])}
	}
}

func signatureTopic(event string) entities.Hash {
	return blake2b.Sum256([]byte(Name + "::" + event))
}

func fieldTopic(event, field string, value any) entities.Hash {
	prefix := []byte(Name + "::" + event + "::" + field)
	return blake2b.Sum256(append(prefix, wireformat.MustEncode(value)...))
}

func (c *ContractDemo) emit(ev Event) {
	c.env.DepositEvent(ev.Topics(), EncodeEvent(ev))
}
