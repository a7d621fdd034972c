package extension

import (
	"log/slog"

	"github.com/nftmart-dev/nftmart-contract-sdk/domain/entities"
	"github.com/nftmart-dev/nftmart-contract-sdk/domain/errors"
	"github.com/nftmart-dev/nftmart-contract-sdk/domain/ports"
	"github.com/nftmart-dev/nftmart-contract-sdk/wireformat"
)

// Extension is the typed NFTMart chain extension client.
type Extension struct {
	channel ports.ChainExtension
	cfg     config
}

// New creates an Extension over channel.
func New(channel ports.ChainExtension, opts ...Option) *Extension {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Extension{channel: channel, cfg: cfg}
}

// FetchRandom returns 32 bytes of host randomness.
func (x *Extension) FetchRandom() ([32]byte, error) {
	var out [32]byte
	err := x.invoke(FuncFetchRandom, wireformat.Unit{}, &out)
	return out, err
}

// CreateClass creates a class owned by the contract and returns its owner and id.
func (x *Extension) CreateClass(args wireformat.CreateClassArgs) (wireformat.CreateClassResult, error) {
	var out wireformat.CreateClassResult
	var in any = args
	if x.cfg.legacyCreateClass {
		in = args.Legacy()
	}
	err := x.invoke(FuncCreateClass, in, &out)
	return out, err
}

// ProxyMint mints quantity tokens of classID on behalf of to.
func (x *Extension) ProxyMint(
	to entities.AccountID,
	classID entities.ClassID,
	metadata entities.Metadata,
	quantity entities.Quantity,
	chargeRoyalty wireformat.OptionBool,
) (wireformat.ProxyMintResult, error) {
	var out wireformat.ProxyMintResult
	err := x.invoke(FuncProxyMint, wireformat.ProxyMintArgs{
		To:            to,
		ClassID:       classID,
		Metadata:      metadata,
		Quantity:      quantity,
		ChargeRoyalty: chargeRoyalty,
	}, &out)
	return out, err
}

// Transfer moves quantity of a token to another account.
func (x *Extension) Transfer(to entities.AccountID, classID entities.ClassID, tokenID entities.TokenID, quantity entities.Quantity) error {
	return x.invoke(FuncTransfer, wireformat.TransferArgs{
		To:       to,
		ClassID:  classID,
		TokenID:  tokenID,
		Quantity: quantity,
	}, &wireformat.Unit{})
}

// Tokens queries a token. The second result is false when the host reports no such token.
// Absence is not folded into a default here; callers choose their own policy.
func (x *Extension) Tokens(classID entities.ClassID, tokenID entities.TokenID) (entities.TokenInfo, bool) {
	var out wireformat.Option[entities.TokenInfo]
	_ = x.invoke(FuncTokens, wireformat.TokensArgs{ClassID: classID, TokenID: tokenID}, &out)
	return out.Get()
}

// Sr25519Verify checks an sr25519 signature of message by account.
func (x *Extension) Sr25519Verify(account entities.AccountID, signature, message []byte) bool {
	var out bool
	_ = x.invoke(FuncSr25519Verify, wireformat.Sr25519VerifyArgs{
		Account:   account,
		Signature: signature,
		Message:   message,
	}, &out)
	return out
}

// invoke performs one call. It only returns an error for a fallible operation answered
// with status 1; queries always return nil.
func (x *Extension) invoke(id FuncID, args, out any) error {
	op := Catalogue.mustLookup(id)
	input := wireformat.MustEncode(args)

	status, output := x.channel.Call(uint32(id), input)
	x.cfg.logger.Debug("chain extension call",
		slog.Int("func_id", int(id)),
		slog.String("op", op.Name),
		slog.Int("status", int(status)),
		slog.Int("output_len", len(output)),
	)

	if op.Fallible() {
		if errors.DecodeStatus(status) == errors.StatusUnknown {
			x.cfg.logger.Error("chain extension protocol violation",
				slog.String("op", op.Name), slog.Int("status", int(status)))
		}
		if err := errors.FromStatusCode(uint32(id), status); err != nil {
			return err
		}
	}

	if err := wireformat.Decode(output, out); err != nil {
		violation := &errors.ProtocolViolation{
			FuncID: uint32(id),
			Status: status,
			Reason: "host output does not decode to " + op.Name + " result",
			Cause:  err,
		}
		x.cfg.logger.Error("chain extension protocol violation", slog.String("error", violation.Error()))
		panic(violation)
	}
	return nil
}
