package exttest

import (
	"context"
	"fmt"
	"sync"

	"github.com/nftmart-dev/nftmart-contract-sdk/domain/entities"
	"github.com/nftmart-dev/nftmart-contract-sdk/domain/ports"
	"github.com/nftmart-dev/nftmart-contract-sdk/extension"
	"github.com/nftmart-dev/nftmart-contract-sdk/hostfuncs"
)

// DefaultContractAccount is the account used as the contract when none is configured.
var DefaultContractAccount = entities.AccountID{0xC0, 0x17, 0x7A, 0xC7}

// Call is one extension call received by the Host.
type Call struct {
	Input  []byte
	FuncID extension.FuncID
	Status uint32
}

// Host is a programmable NFTMart extension host.
type Host struct {
	registry *hostfuncs.HandlerRegistry
	ledger   *Ledger
	calls    []Call
	mu       sync.Mutex
}

type hostConfig struct {
	fixture    entities.HostFixture
	middleware []hostfuncs.Middleware
	overrides  []hostfuncs.HostFuncBundle
	failing    []extension.FuncID
	seed       string
	contract   entities.AccountID
	legacy     bool
}

// HostOption configures a Host.
type HostOption func(*hostConfig)

// WithSeed sets the randomness seed.
func WithSeed(seed string) HostOption {
	return func(c *hostConfig) { c.seed = seed }
}

// WithContractAccount sets the account acting as the contract.
func WithContractAccount(account entities.AccountID) HostOption {
	return func(c *hostConfig) { c.contract = account }
}

// WithFailing makes the given functions always answer with status 1.
func WithFailing(ids ...extension.FuncID) HostOption {
	return func(c *hostConfig) { c.failing = append(c.failing, ids...) }
}

// WithOverride replaces ledger handlers with the bundle's handlers.
func WithOverride(bundle hostfuncs.HostFuncBundle) HostOption {
	return func(c *hostConfig) { c.overrides = append(c.overrides, bundle) }
}

// WithMiddleware wraps every handler, inside call recording.
func WithMiddleware(mw ...hostfuncs.Middleware) HostOption {
	return func(c *hostConfig) { c.middleware = append(c.middleware, mw...) }
}

// WithFixture seeds the ledger and failure set from a scenario fixture.
func WithFixture(f entities.HostFixture) HostOption {
	return func(c *hostConfig) {
		c.fixture = f
		if f.RandomSeed != "" {
			c.seed = f.RandomSeed
		}
		for _, id := range f.FailFuncs {
			c.failing = append(c.failing, extension.FuncID(id))
		}
	}
}

// WithLegacyCreateClass makes the host expect the four-field create_class tuple.
func WithLegacyCreateClass() HostOption {
	return func(c *hostConfig) { c.legacy = true }
}

// NewHost builds a host backed by a fresh ledger.
func NewHost(opts ...HostOption) (*Host, error) {
	cfg := hostConfig{seed: "nftmart", contract: DefaultContractAccount}
	for _, opt := range opts {
		opt(&cfg)
	}

	h := &Host{ledger: NewLedger(cfg.contract, []byte(cfg.seed), cfg.fixture.BlockNumber)}
	if err := h.seedFixture(cfg.fixture); err != nil {
		return nil, err
	}

	bundles := []hostfuncs.HostFuncBundle{h.ledger.Bundle(cfg.legacy)}
	bundles = append(bundles, cfg.overrides...)
	if len(cfg.failing) > 0 {
		bundles = append(bundles, hostfuncs.StaticBundle(hostfuncs.Response{Status: hostfuncs.StatusFail}, cfg.failing...))
	}

	mw := append([]hostfuncs.Middleware{h.recordMiddleware(), hostfuncs.PanicRecoveryMiddleware()}, cfg.middleware...)
	registry, err := hostfuncs.NewRegistry(
		hostfuncs.WithMiddleware(mw...),
		hostfuncs.WithBundle(hostfuncs.Compose(bundles...)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build extension registry: %w", err)
	}
	h.registry = registry
	return h, nil
}

func (h *Host) seedFixture(f entities.HostFixture) error {
	for _, c := range f.Classes {
		if err := h.ledger.AddClass(c.ID, c.Owner, c.Metadata); err != nil {
			return err
		}
		for _, t := range c.Tokens {
			if err := h.ledger.AddToken(c.ID, t.ID, t.Owner, t.Quantity, t.Metadata); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *Host) recordMiddleware() hostfuncs.Middleware {
	return func(next hostfuncs.ExtensionHandler) hostfuncs.ExtensionHandler {
		return func(ctx context.Context, input []byte) (hostfuncs.Response, error) {
			resp, err := next(ctx, input)
			call := Call{Input: append([]byte(nil), input...), Status: resp.Status}
			if hc, ok := ctx.(hostfuncs.HostContext); ok {
				call.FuncID = hc.FuncID()
			}
			h.mu.Lock()
			h.calls = append(h.calls, call)
			h.mu.Unlock()
			return resp, err
		}
	}
}

// Registry returns the handler registry.
func (h *Host) Registry() *hostfuncs.HandlerRegistry {
	return h.registry
}

// Ledger returns the backing ledger.
func (h *Host) Ledger() *Ledger {
	return h.ledger
}

// ChainExtension returns a channel for natively executed contract code.
func (h *Host) ChainExtension(ctx context.Context) ports.ChainExtension {
	return hostfuncs.ChainExtension(ctx, h.registry)
}

// Extension returns a typed client over ChainExtension.
func (h *Host) Extension(ctx context.Context, opts ...extension.Option) *extension.Extension {
	return extension.New(h.ChainExtension(ctx), opts...)
}

// Calls returns every call received so far.
func (h *Host) Calls() []Call {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Call(nil), h.calls...)
}

// CallIDs returns the function ids of every call received so far, in order.
func (h *Host) CallIDs() []extension.FuncID {
	h.mu.Lock()
	defer h.mu.Unlock()
	ids := make([]extension.FuncID, len(h.calls))
	for i, c := range h.calls {
		ids[i] = c.FuncID
	}
	return ids
}

// ResetCalls forgets recorded calls.
func (h *Host) ResetCalls() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = nil
}
