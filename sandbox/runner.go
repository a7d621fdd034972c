package sandbox

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"

	sdk "github.com/nftmart-dev/nftmart-contract-sdk"
	"github.com/nftmart-dev/nftmart-contract-sdk/contract"
	"github.com/nftmart-dev/nftmart-contract-sdk/domain/entities"
	"github.com/nftmart-dev/nftmart-contract-sdk/domain/ports"
	"github.com/nftmart-dev/nftmart-contract-sdk/exttest"
	"github.com/nftmart-dev/nftmart-contract-sdk/infrastructure/parser"
)

// Step outcomes, as written in a scenario's expect field.
const (
	OutcomeSuccess = "success"
	OutcomeRevert  = "revert"
	OutcomeTrap    = "trap"
)

// Outcome classifies a result.
func Outcome(res entities.ExecResult) string {
	switch {
	case res.IsTrapped():
		return OutcomeTrap
	case res.IsReverted():
		return OutcomeRevert
	default:
		return OutcomeSuccess
	}
}

// ExecutorFactory builds the executor for a scenario once its host state exists.
type ExecutorFactory func(ctx context.Context, host *exttest.Host, env *exttest.Environment) (ports.ContractExecutor, error)

// NativeFactory runs scenarios against the in-process contract.
func NativeFactory(opts ...Option) ExecutorFactory {
	return func(_ context.Context, host *exttest.Host, env *exttest.Environment) (ports.ContractExecutor, error) {
		return NewNative(host, env, opts...), nil
	}
}

// WasmFactory runs scenarios against a compiled contract.
func WasmFactory(wasmBytes []byte, opts ...Option) ExecutorFactory {
	return func(ctx context.Context, host *exttest.Host, env *exttest.Environment) (ports.ContractExecutor, error) {
		return NewWasm(ctx, wasmBytes, host, env, opts...)
	}
}

// StepReport is the outcome of one scenario step.
type StepReport struct {
	Result  entities.ExecResult `json:"result"`
	Message string              `json:"message"`
	Expect  string              `json:"expect"`
	Outcome string              `json:"outcome"`
	Output  string              `json:"output,omitempty"`
	Passed  bool                `json:"passed"`
}

// Report is the outcome of a scenario run.
type Report struct {
	Scenario string       `json:"scenario"`
	Steps    []StepReport `json:"steps"`
	Passed   bool         `json:"passed"`
}

type runnerConfig struct {
	parser       ports.ScenarioParser
	logger       *slog.Logger
	hostOpts     []exttest.HostOption
	validateArgs bool
}

// RunnerOption configures a Runner.
type RunnerOption func(*runnerConfig)

// WithParser sets a custom scenario parser.
func WithParser(p ports.ScenarioParser) RunnerOption {
	return func(c *runnerConfig) { c.parser = p }
}

// WithRunnerLogger sets the logger for step summaries.
func WithRunnerLogger(l *slog.Logger) RunnerOption {
	return func(c *runnerConfig) { c.logger = l }
}

// WithHostOptions adds options to every host the runner builds.
func WithHostOptions(opts ...exttest.HostOption) RunnerOption {
	return func(c *runnerConfig) { c.hostOpts = append(c.hostOpts, opts...) }
}

// WithArgValidation validates step arguments before building call data.
// Without it, invalid arguments reach the contract, which reverts.
func WithArgValidation(enabled bool) RunnerOption {
	return func(c *runnerConfig) { c.validateArgs = enabled }
}

// Runner orchestrates the scenario pipeline: parse, seed the host, deploy, run steps.
type Runner struct {
	config runnerConfig
}

// NewRunner creates a Runner with defaults.
func NewRunner(opts ...RunnerOption) *Runner {
	cfg := runnerConfig{
		parser: parser.NewYamlScenarioParser(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Runner{config: cfg}
}

// Run executes a raw scenario file.
func (r *Runner) Run(ctx context.Context, raw []byte, factory ExecutorFactory) (*Report, error) {
	scenario, err := r.config.parser.Parse(raw)
	if err != nil {
		return nil, err
	}
	return r.RunScenario(ctx, scenario, factory)
}

// RunScenario executes a parsed scenario against a freshly deployed contract.
// An error means the scenario itself is broken; failed expectations are in the report.
func (r *Runner) RunScenario(ctx context.Context, scenario *entities.Scenario, factory ExecutorFactory) (*Report, error) {
	hostOpts := append([]exttest.HostOption{exttest.WithFixture(scenario.Host)}, r.config.hostOpts...)
	host, err := exttest.NewHost(hostOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to seed host: %w", err)
	}
	env := exttest.NewEnvironment(scenario.Caller)

	exec, err := factory(ctx, host, env)
	if err != nil {
		return nil, err
	}
	if c, ok := exec.(interface{ Close(context.Context) error }); ok {
		defer c.Close(ctx)
	}

	ctor, err := sdk.BuildCall(contract.ConstructorName, nil)
	if err != nil {
		return nil, err
	}
	deployed, err := exec.Deploy(ctx, scenario.Caller, ctor)
	if err != nil {
		return nil, err
	}
	if !deployed.IsSuccess() {
		return nil, fmt.Errorf("deploy failed: %s", Outcome(deployed))
	}

	report := &Report{Scenario: scenario.Name, Passed: true}
	for i, step := range scenario.Steps {
		sr, err := r.runStep(ctx, exec, scenario.Caller, step)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, step.Message, err)
		}
		report.Passed = report.Passed && sr.Passed
		report.Steps = append(report.Steps, sr)

		r.config.logger.InfoContext(ctx, "scenario step",
			slog.Int("step", i+1),
			slog.String("message", step.Message),
			slog.String("outcome", sr.Outcome),
			slog.Bool("passed", sr.Passed),
		)
	}
	return report, nil
}

func (r *Runner) runStep(ctx context.Context, exec ports.ContractExecutor, caller entities.AccountID, step entities.ScenarioStep) (StepReport, error) {
	if step.Caller != nil {
		caller = *step.Caller
	}
	input, err := sdk.BuildCall(step.Message, step.Args, sdk.WithValidation(r.config.validateArgs))
	if err != nil {
		return StepReport{}, err
	}

	res, err := exec.Call(ctx, caller, input)
	if err != nil {
		return StepReport{}, err
	}

	expect := step.Expect
	if expect == "" {
		expect = OutcomeSuccess
	}
	sr := StepReport{
		Message: step.Message,
		Expect:  expect,
		Outcome: Outcome(res),
		Result:  res,
	}
	if len(res.Data) > 0 {
		sr.Output = "0x" + hex.EncodeToString(res.Data)
	}
	sr.Passed = sr.Outcome == sr.Expect
	return sr, nil
}
