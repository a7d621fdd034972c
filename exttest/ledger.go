package exttest

import (
	"context"
	"crypto/subtle"
	"encoding/binary"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/crypto/blake2b"

	"github.com/nftmart-dev/nftmart-contract-sdk/domain/entities"
	"github.com/nftmart-dev/nftmart-contract-sdk/domain/errors"
	"github.com/nftmart-dev/nftmart-contract-sdk/extension"
	"github.com/nftmart-dev/nftmart-contract-sdk/hostfuncs"
	"github.com/nftmart-dev/nftmart-contract-sdk/wireformat"
)

// DepositPerByte is the deposit charged per metadata byte when minting.
const DepositPerByte = 10_000_000_000

type token struct {
	balances map[entities.AccountID]entities.Quantity
	info     entities.TokenInfo
}

type class struct {
	tokens      map[entities.TokenID]*token
	metadata    entities.Metadata
	name        entities.Chars
	description entities.Chars
	categories  []entities.GlobalID
	nextToken   entities.TokenID
	owner       entities.AccountID
	royaltyRate entities.PerU16
	properties  uint8
}

// Ledger is the host's class and token state. It is safe for concurrent use.
type Ledger struct {
	classes   map[entities.ClassID]*class
	seed      []byte
	mu        sync.Mutex
	nextClass entities.ClassID
	draws     uint64
	block     entities.BlockNumber
	contract  entities.AccountID
}

// NewLedger creates an empty ledger. Classes created through the extension are owned by
// contract, and transfers move tokens out of its balance.
func NewLedger(contract entities.AccountID, seed []byte, block entities.BlockNumber) *Ledger {
	return &Ledger{
		classes:  make(map[entities.ClassID]*class),
		seed:     append([]byte(nil), seed...),
		block:    block,
		contract: contract,
	}
}

// ContractAccount returns the account acting as the contract.
func (l *Ledger) ContractAccount() entities.AccountID {
	return l.contract
}

// AddClass inserts a class directly, bypassing the extension.
func (l *Ledger) AddClass(id entities.ClassID, owner entities.AccountID, metadata entities.Metadata) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.classes[id]; exists {
		return fmt.Errorf("class %d already exists", id)
	}
	l.classes[id] = &class{owner: owner, metadata: metadata, tokens: make(map[entities.TokenID]*token)}
	if id >= l.nextClass {
		l.nextClass = id + 1
	}
	return nil
}

// AddToken credits quantity of a token to owner, creating the token if needed.
func (l *Ledger) AddToken(classID entities.ClassID, tokenID entities.TokenID, owner entities.AccountID, quantity entities.Quantity, metadata entities.Metadata) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.classes[classID]
	if !ok {
		return fmt.Errorf("class %d does not exist", classID)
	}
	t, ok := c.tokens[tokenID]
	if !ok {
		t = &token{
			balances: make(map[entities.AccountID]entities.Quantity),
			info: entities.TokenInfo{
				Metadata: metadata,
				Data: entities.TokenData{
					Deposit:            entities.NewBalance(uint64(len(metadata)) * DepositPerByte),
					CreateBlock:        l.block,
					Creator:            owner,
					RoyaltyBeneficiary: c.owner,
				},
			},
		}
		c.tokens[tokenID] = t
		if tokenID >= c.nextToken {
			c.nextToken = tokenID + 1
		}
	}
	t.balances[owner] += quantity
	t.info.Quantity += quantity
	return nil
}

// Balance returns how much of a token account holds.
func (l *Ledger) Balance(classID entities.ClassID, tokenID entities.TokenID, account entities.AccountID) entities.Quantity {
	l.mu.Lock()
	defer l.mu.Unlock()
	if t := l.token(classID, tokenID); t != nil {
		return t.balances[account]
	}
	return 0
}

// ClassOwner returns the owner of a class.
func (l *Ledger) ClassOwner(id entities.ClassID) (entities.AccountID, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.classes[id]
	if !ok {
		return entities.AccountID{}, false
	}
	return c.owner, true
}

// ClassIDs returns the ids of every class in ascending order.
func (l *Ledger) ClassIDs() []entities.ClassID {
	l.mu.Lock()
	defer l.mu.Unlock()
	ids := make([]entities.ClassID, 0, len(l.classes))
	for id := range l.classes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// TestSignature returns the signature the ledger accepts for message by account.
// It stands in for sr25519: a BLAKE2b-512 digest over account and message.
func TestSignature(account entities.AccountID, message []byte) []byte {
	h := blake2b.Sum512(append(append([]byte(nil), account[:]...), message...))
	return h[:]
}

func (l *Ledger) token(classID entities.ClassID, tokenID entities.TokenID) *token {
	c, ok := l.classes[classID]
	if !ok {
		return nil
	}
	return c.tokens[tokenID]
}

// FetchRandom derives the next random value from the seed and a draw counter.
func (l *Ledger) FetchRandom(context.Context, wireformat.Unit) ([32]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var counter [8]byte
	binary.LittleEndian.PutUint64(counter[:], l.draws)
	l.draws++
	return blake2b.Sum256(append(append([]byte(nil), l.seed...), counter[:]...)), nil
}

// CreateClass allocates the next class id, owned by the contract account.
func (l *Ledger) CreateClass(_ context.Context, req wireformat.CreateClassArgs) (wireformat.CreateClassResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := l.nextClass
	l.nextClass++
	l.classes[id] = &class{
		owner:       l.contract,
		metadata:    req.Metadata,
		name:        req.Name,
		description: req.Description,
		properties:  req.Properties,
		royaltyRate: req.RoyaltyRate,
		categories:  req.CategoryIDs,
		tokens:      make(map[entities.TokenID]*token),
	}
	return wireformat.CreateClassResult{Owner: l.contract, ClassID: id}, nil
}

// CreateClassLegacy accepts the four-field create_class tuple.
func (l *Ledger) CreateClassLegacy(ctx context.Context, req wireformat.LegacyCreateClassArgs) (wireformat.CreateClassResult, error) {
	return l.CreateClass(ctx, wireformat.CreateClassArgs{
		Metadata:    req.Metadata,
		Name:        req.Name,
		Description: req.Description,
		Properties:  req.Properties,
	})
}

// ProxyMint mints a new token of an existing class to req.To.
// It fails for an unknown class or a zero quantity.
func (l *Ledger) ProxyMint(_ context.Context, req wireformat.ProxyMintArgs) (wireformat.ProxyMintResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.classes[req.ClassID]
	if !ok || req.Quantity == 0 {
		return wireformat.ProxyMintResult{}, errors.ErrFail
	}
	id := c.nextToken
	c.nextToken++
	royalty := req.ChargeRoyalty.Present && req.ChargeRoyalty.Value
	c.tokens[id] = &token{
		balances: map[entities.AccountID]entities.Quantity{req.To: req.Quantity},
		info: entities.TokenInfo{
			Metadata: req.Metadata,
			Quantity: req.Quantity,
			Data: entities.TokenData{
				Deposit:            entities.NewBalance(uint64(len(req.Metadata)) * DepositPerByte),
				CreateBlock:        l.block,
				Royalty:            royalty,
				Creator:            req.To,
				RoyaltyBeneficiary: c.owner,
			},
		},
	}
	return wireformat.ProxyMintResult{
		ClassOwner:  c.owner,
		Beneficiary: c.owner,
		ClassID:     req.ClassID,
		TokenID:     id,
		Quantity:    req.Quantity,
	}, nil
}

// Transfer moves tokens from the contract account to req.To.
// It fails for an unknown token, a zero quantity or an insufficient balance.
func (l *Ledger) Transfer(_ context.Context, req wireformat.TransferArgs) (wireformat.Unit, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	t := l.token(req.ClassID, req.TokenID)
	if t == nil || req.Quantity == 0 || t.balances[l.contract] < req.Quantity {
		return wireformat.Unit{}, errors.ErrFail
	}
	t.balances[l.contract] -= req.Quantity
	if t.balances[l.contract] == 0 {
		delete(t.balances, l.contract)
	}
	t.balances[req.To] += req.Quantity
	return wireformat.Unit{}, nil
}

// Tokens returns the token snapshot, or None.
func (l *Ledger) Tokens(_ context.Context, req wireformat.TokensArgs) (wireformat.Option[entities.TokenInfo], error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	t := l.token(req.ClassID, req.TokenID)
	if t == nil {
		return wireformat.None[entities.TokenInfo](), nil
	}
	return wireformat.Some(t.info), nil
}

// Sr25519Verify checks a signature produced by TestSignature.
func (l *Ledger) Sr25519Verify(_ context.Context, req wireformat.Sr25519VerifyArgs) (bool, error) {
	want := TestSignature(req.Account, req.Message)
	return subtle.ConstantTimeCompare(want, req.Signature) == 1, nil
}

// Bundle exposes the ledger as extension handlers.
func (l *Ledger) Bundle(legacyCreateClass bool) hostfuncs.HostFuncBundle {
	createClass := hostfuncs.NewSCALEHandler(l.CreateClass)
	if legacyCreateClass {
		createClass = hostfuncs.NewSCALEHandler(l.CreateClassLegacy)
	}
	return hostfuncs.NewBundle(map[extension.FuncID]hostfuncs.ExtensionHandler{
		extension.FuncFetchRandom:   hostfuncs.NewSCALEHandler(l.FetchRandom),
		extension.FuncCreateClass:   createClass,
		extension.FuncProxyMint:     hostfuncs.NewSCALEHandler(l.ProxyMint),
		extension.FuncTransfer:      hostfuncs.NewSCALEHandler(l.Transfer),
		extension.FuncTokens:        hostfuncs.NewSCALEHandler(l.Tokens),
		extension.FuncSr25519Verify: hostfuncs.NewSCALEHandler(l.Sr25519Verify),
	})
}

// LedgerSnapshot is a saved ledger state.
type LedgerSnapshot struct {
	classes   map[entities.ClassID]*class
	nextClass entities.ClassID
	draws     uint64
}

// Snapshot deep-copies the ledger state.
func (l *Ledger) Snapshot() LedgerSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return LedgerSnapshot{classes: cloneClasses(l.classes), nextClass: l.nextClass, draws: l.draws}
}

// Restore rolls the ledger back to a snapshot.
func (l *Ledger) Restore(s LedgerSnapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.classes = cloneClasses(s.classes)
	l.nextClass = s.nextClass
	l.draws = s.draws
}

func cloneClasses(in map[entities.ClassID]*class) map[entities.ClassID]*class {
	out := make(map[entities.ClassID]*class, len(in))
	for id, c := range in {
		cc := *c
		cc.tokens = make(map[entities.TokenID]*token, len(c.tokens))
		for tid, t := range c.tokens {
			tt := *t
			tt.balances = make(map[entities.AccountID]entities.Quantity, len(t.balances))
			for acc, q := range t.balances {
				tt.balances[acc] = q
			}
			cc.tokens[tid] = &tt
		}
		out[id] = &cc
	}
	return out
}
