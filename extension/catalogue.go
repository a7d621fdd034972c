package extension

import (
	"fmt"
	"sort"

	"github.com/nftmart-dev/nftmart-contract-sdk/domain/entities"
	"github.com/nftmart-dev/nftmart-contract-sdk/wireformat"
)

// FuncID is a chain extension function identifier.
type FuncID uint32

// Function ids understood by the NFTMart host.
const (
	FuncTokens        FuncID = 1001
	FuncSr25519Verify FuncID = 1101
	FuncFetchRandom   FuncID = 2001
	FuncCreateClass   FuncID = 2002
	FuncProxyMint     FuncID = 2003
	FuncTransfer      FuncID = 2004
)

// StatusMode says how the status code of a call is interpreted.
type StatusMode int

const (
	// HandleStatus decodes the status into success, ErrFail or a protocol violation.
	HandleStatus StatusMode = iota
	// IgnoreStatus discards the status; the output alone is the answer.
	IgnoreStatus
)

func (m StatusMode) String() string {
	if m == IgnoreStatus {
		return "ignore_status"
	}
	return "handle_status"
}

// Operation describes one extension function.
type Operation struct {
	// NewArgs returns a pointer to a zero argument tuple.
	NewArgs func() any
	// NewResult returns a pointer to a zero result.
	NewResult func() any
	Name      string
	ID        FuncID
	Status    StatusMode
}

// Fallible reports whether a failing status is surfaced as an error.
func (op Operation) Fallible() bool {
	return op.Status == HandleStatus
}

type catalogue struct {
	byID map[FuncID]Operation
}

// Catalogue is the closed set of operations.
var Catalogue = newCatalogue(
	Operation{
		ID: FuncFetchRandom, Name: "fetch_random", Status: HandleStatus,
		NewArgs:   func() any { return &wireformat.Unit{} },
		NewResult: func() any { return &[32]byte{} },
	},
	Operation{
		ID: FuncCreateClass, Name: "create_class", Status: HandleStatus,
		NewArgs:   func() any { return &wireformat.CreateClassArgs{} },
		NewResult: func() any { return &wireformat.CreateClassResult{} },
	},
	Operation{
		ID: FuncProxyMint, Name: "proxy_mint", Status: HandleStatus,
		NewArgs:   func() any { return &wireformat.ProxyMintArgs{} },
		NewResult: func() any { return &wireformat.ProxyMintResult{} },
	},
	Operation{
		ID: FuncTransfer, Name: "transfer", Status: HandleStatus,
		NewArgs:   func() any { return &wireformat.TransferArgs{} },
		NewResult: func() any { return &wireformat.Unit{} },
	},
	Operation{
		ID: FuncTokens, Name: "tokens", Status: IgnoreStatus,
		NewArgs:   func() any { return &wireformat.TokensArgs{} },
		NewResult: func() any { return &wireformat.Option[entities.TokenInfo]{} },
	},
	Operation{
		ID: FuncSr25519Verify, Name: "sr25519_verify", Status: IgnoreStatus,
		NewArgs:   func() any { return &wireformat.Sr25519VerifyArgs{} },
		NewResult: func() any { return new(bool) },
	},
)

func newCatalogue(ops ...Operation) catalogue {
	c := catalogue{byID: make(map[FuncID]Operation, len(ops))}
	for _, op := range ops {
		if _, dup := c.byID[op.ID]; dup {
			panic(fmt.Errorf("duplicate extension function id %d (%s)", op.ID, op.Name))
		}
		c.byID[op.ID] = op
	}
	return c
}

// Lookup returns the operation bound to id.
func (c catalogue) Lookup(id FuncID) (Operation, bool) {
	op, ok := c.byID[id]
	return op, ok
}

// Operations returns every operation sorted by id.
func (c catalogue) Operations() []Operation {
	ops := make([]Operation, 0, len(c.byID))
	for _, op := range c.byID {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].ID < ops[j].ID })
	return ops
}

func (c catalogue) mustLookup(id FuncID) Operation {
	op, ok := c.byID[id]
	if !ok {
		panic(fmt.Errorf("unknown extension function id %d", id))
	}
	return op
}
