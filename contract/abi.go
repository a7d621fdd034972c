package contract

import (
	"context"
	"encoding/hex"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/blake2b"

	"github.com/nftmart-dev/nftmart-contract-sdk/domain/entities"
	"github.com/nftmart-dev/nftmart-contract-sdk/domain/errors"
	"github.com/nftmart-dev/nftmart-contract-sdk/domain/ports"
	"github.com/nftmart-dev/nftmart-contract-sdk/extension"
	"github.com/nftmart-dev/nftmart-contract-sdk/wireformat"
)

var validate = validator.New()

// Selector is the 4-byte prefix of call data naming a message or constructor.
type Selector [4]byte

// SelectorOf derives a selector from a message name: the first four bytes of its
// BLAKE2b-256 hash.
func SelectorOf(name string) Selector {
	h := blake2b.Sum256([]byte(name))
	return Selector{h[0], h[1], h[2], h[3]}
}

func (s Selector) String() string {
	return "0x" + hex.EncodeToString(s[:])
}

// Message describes one callable message.
type Message struct {
	// NewArgs returns a pointer to a zero argument tuple.
	NewArgs func() any
	run     func(c *ContractDemo, args any) (any, error)
	Name    string
	// Returns names the SCALE type of the output.
	Returns  string
	Selector Selector
	// Mutates is set for messages that may write storage.
	Mutates bool
	// Fallible messages return Result<(), NFTMartErr>.
	Fallible bool
}

func message[A any](name, returns string, mutates, fallible bool, run func(*ContractDemo, *A) (any, error)) Message {
	return Message{
		Name:     name,
		Returns:  returns,
		Selector: SelectorOf(name),
		Mutates:  mutates,
		Fallible: fallible,
		NewArgs:  func() any { return new(A) },
		run: func(c *ContractDemo, args any) (any, error) {
			return run(c, args.(*A))
		},
	}
}

var messages = []Message{
	message("tokens", "(Metadata, Quantity, BlockNumber)", false, false,
		func(c *ContractDemo, a *TokensArgs) (any, error) {
			return c.Tokens(a.ClassID, a.TokenID), nil
		}),
	message("create_class", "Result<(), NFTMartErr>", true, true,
		func(c *ContractDemo, a *CreateClassArgs) (any, error) {
			return nil, c.CreateClass(a.Metadata, a.Name, a.Description, a.Properties)
		}),
	message("create_class_with_royalty", "Result<(), NFTMartErr>", true, true,
		func(c *ContractDemo, a *CreateClassWithRoyaltyArgs) (any, error) {
			return nil, c.CreateClassWithRoyalty(wireformat.CreateClassArgs{
				Metadata:    a.Metadata,
				Name:        a.Name,
				Description: a.Description,
				Properties:  a.Properties,
				RoyaltyRate: a.RoyaltyRate,
				CategoryIDs: a.CategoryIDs,
			})
		}),
	message("mint_nft", "Result<(), NFTMartErr>", true, true,
		func(c *ContractDemo, a *MintNFTArgs) (any, error) {
			return nil, c.MintNFT(a.ClassID, a.Metadata, a.Quantity, a.ChargeRoyalty)
		}),
	message("transfer", "Result<(), NFTMartErr>", true, true,
		func(c *ContractDemo, a *TransferArgs) (any, error) {
			return nil, c.Transfer(a.To, a.ClassID, a.TokenID, a.Quantity)
		}),
	message("transfer_all", "Result<(), NFTMartErr>", true, true,
		func(c *ContractDemo, a *TransferAllArgs) (any, error) {
			return nil, c.TransferAll(a.To, a.Items)
		}),
	message("update", "Result<(), NFTMartErr>", true, true,
		func(c *ContractDemo, _ *NoArgs) (any, error) {
			return nil, c.Update()
		}),
	message("get", "[u8; 32]", false, false,
		func(c *ContractDemo, _ *NoArgs) (any, error) {
			return c.Get(), nil
		}),
}

// ConstructorName is the only constructor.
const ConstructorName = "new"

// Messages returns every message in declaration order.
func Messages() []Message {
	return append([]Message(nil), messages...)
}

// LookupMessage finds a message by name.
func LookupMessage(name string) (Message, bool) {
	for _, m := range messages {
		if m.Name == name {
			return m, true
		}
	}
	return Message{}, false
}

func lookupSelector(sel Selector) (Message, bool) {
	for _, m := range messages {
		if m.Selector == sel {
			return m, true
		}
	}
	return Message{}, false
}

// EncodeCall builds call data for a message: selector followed by the SCALE-encoded arguments.
func EncodeCall(name string, args any) ([]byte, error) {
	var sel Selector
	if name == ConstructorName {
		sel = SelectorOf(name)
	} else {
		m, ok := LookupMessage(name)
		if !ok {
			return nil, fmt.Errorf("unknown message %q", name)
		}
		sel = m.Selector
	}
	if args == nil {
		return sel[:], nil
	}
	data, err := wireformat.Encode(args)
	if err != nil {
		return nil, err
	}
	return append(sel[:], data...), nil
}

// Outcome is what an entry point hands back to the host.
type Outcome struct {
	Data  []byte
	Flags entities.ReturnFlags
}

// EncodeResult encodes the Result<(), NFTMartErr> of a fallible message.
func EncodeResult(err error) []byte {
	if err == nil {
		return []byte{0x00}
	}
	return []byte{0x01, byte(errors.Fail)}
}

// DecodeResult is the inverse of EncodeResult.
func DecodeResult(data []byte) error {
	switch {
	case len(data) == 1 && data[0] == 0x00:
		return nil
	case len(data) == 2 && data[0] == 0x01 && data[1] == byte(errors.Fail):
		return errors.ErrFail
	default:
		return &errors.WireFormatError{
			Operation: "decode",
			Type:      "Result<(), NFTMartErr>",
			Err:       fmt.Errorf("unexpected bytes 0x%x", data),
		}
	}
}

// Deploy runs the constructor selected by input.
func Deploy(ctx context.Context, env ports.Environment, ext *extension.Extension, input []byte) (Outcome, error) {
	if len(input) < len(Selector{}) || Selector(input[:4]) != SelectorOf(ConstructorName) {
		return Outcome{}, fmt.Errorf("unknown constructor selector 0x%x", input)
	}
	slog.DebugContext(ctx, "deploying contract", slog.String("contract", Name))
	New(env, ext).Flush()
	return Outcome{}, nil
}

// Dispatch runs the message selected by the first four bytes of input.
//
// It returns an error only for malformed call data; the host should trap the call.
// A fallible message that fails, or whose arguments are invalid, yields Err(Fail) with
// the revert flag set and storage left untouched.
func Dispatch(ctx context.Context, env ports.Environment, ext *extension.Extension, input []byte) (Outcome, error) {
	if len(input) < len(Selector{}) {
		return Outcome{}, fmt.Errorf("call data too short: %d bytes", len(input))
	}
	msg, ok := lookupSelector(Selector(input[:4]))
	if !ok {
		return Outcome{}, fmt.Errorf("unknown message selector 0x%x", input[:4])
	}

	args := msg.NewArgs()
	if err := wireformat.DecodeExact(input[4:], args); err != nil {
		return Outcome{}, fmt.Errorf("decoding %s arguments: %w", msg.Name, err)
	}

	logger := slog.Default().With(slog.String("message", msg.Name))
	logger.DebugContext(ctx, "dispatching message", slog.String("selector", msg.Selector.String()))

	if err := validate.Struct(args); err != nil {
		verr := &errors.ValidationError{Message: msg.Name, Err: err}
		logger.WarnContext(ctx, "rejected message arguments", slog.String("error", verr.Error()))
		if !msg.Fallible {
			return Outcome{}, verr
		}
		return Outcome{Data: EncodeResult(errors.ErrFail), Flags: entities.FlagRevert}, nil
	}

	c, err := Load(env, ext)
	if err != nil {
		return Outcome{}, fmt.Errorf("loading contract storage: %w", err)
	}

	out, err := msg.run(c, args)
	if msg.Fallible {
		if err != nil {
			if !stderrors.Is(err, errors.ErrFail) {
				return Outcome{}, err
			}
			logger.DebugContext(ctx, "message failed", slog.String("error", err.Error()))
			return Outcome{Data: EncodeResult(err), Flags: entities.FlagRevert}, nil
		}
		if msg.Mutates {
			c.Flush()
		}
		return Outcome{Data: EncodeResult(nil)}, nil
	}
	if err != nil {
		return Outcome{}, err
	}

	data, err := wireformat.Encode(out)
	if err != nil {
		return Outcome{}, err
	}
	if msg.Mutates {
		c.Flush()
	}
	return Outcome{Data: data}, nil
}

// Call reads call data from env, dispatches it and returns the outcome through env.Return.
func Call(ctx context.Context, env ports.Environment, ext *extension.Extension) error {
	out, err := Dispatch(ctx, env, ext, env.Input())
	if err != nil {
		return err
	}
	env.Return(out.Flags, out.Data)
	return nil
}

// Instantiate is Call for the deploy entry point.
func Instantiate(ctx context.Context, env ports.Environment, ext *extension.Extension) error {
	out, err := Deploy(ctx, env, ext, env.Input())
	if err != nil {
		return err
	}
	env.Return(out.Flags, out.Data)
	return nil
}
