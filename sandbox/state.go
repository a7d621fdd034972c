package sandbox

import (
	"context"
	"log/slog"
	"sync"

	"github.com/nftmart-dev/nftmart-contract-sdk/domain/entities"
	"github.com/nftmart-dev/nftmart-contract-sdk/domain/errors"
	"github.com/nftmart-dev/nftmart-contract-sdk/exttest"
)

// state is the host side shared by both executors.
type state struct {
	host *exttest.Host
	env  *exttest.Environment
	cfg  config
	mu   sync.Mutex
}

func newState(host *exttest.Host, env *exttest.Environment, opts []Option) *state {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &state{host: host, env: env, cfg: cfg}
}

// Host returns the extension host backing the executor.
func (s *state) Host() *exttest.Host {
	return s.host
}

// Environment returns the contract environment backing the executor.
func (s *state) Environment() *exttest.Environment {
	return s.env
}

// execute runs one entry point and turns its outcome into an ExecResult.
// run returns the trap cause, or nil if the entry point returned normally.
func (s *state) execute(ctx context.Context, entry string, caller entities.AccountID, input []byte, run func(context.Context) (string, error)) entities.ExecResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.env.Begin(caller, input)
	ledger := s.host.Ledger().Snapshot()
	storage := s.env.Snapshot()

	extra, trap := run(ctx)

	flags, data, _ := s.env.Returned()
	res := entities.ExecResult{
		Data:   data,
		Flags:  flags,
		Events: s.env.Events(),
		Debug:  s.env.Debug() + extra,
	}
	if trap != nil {
		res.Data = nil
		res.Flags = 0
		res.Error = &entities.ErrorDetail{
			Type:    "trap",
			Code:    "contract_trapped",
			Message: trap.Error(),
			Wrapped: errors.ToErrorDetail(trap),
		}
	}
	if !res.IsSuccess() {
		s.host.Ledger().Restore(ledger)
		s.env.Restore(storage)
		res.Events = nil
	}

	s.cfg.logger.DebugContext(ctx, "sandbox: call finished",
		slog.String("entry", entry),
		slog.String("caller", caller.String()),
		slog.Bool("reverted", res.IsReverted()),
		slog.Bool("trapped", res.IsTrapped()),
		slog.Int("events", len(res.Events)),
	)
	return res
}
