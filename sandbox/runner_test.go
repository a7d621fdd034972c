package sandbox

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/nftmart-dev/nftmart-contract-sdk/domain/ports"
	"github.com/nftmart-dev/nftmart-contract-sdk/exttest"
)

const contractAccount = "0xc0177ac700000000000000000000000000000000000000000000000000000000"

const mintScenario = `
name: create, mint and transfer
caller: "0xa100000000000000000000000000000000000000000000000000000000000000"
host:
  random_seed: scenario
  classes:
    - id: 7
      owner: "0xa100000000000000000000000000000000000000000000000000000000000000"
      tokens:
        - id: 0
          quantity: 3
          owner: "` + contractAccount + `"
steps:
  - message: create_class
    args: {metadata: "ipfs://class", name: Demo, description: A class, properties: 1}
  - message: mint_nft
    args: {class_id: 7, metadata: "ipfs://token", quantity: 2, charge_royalty: true}
  - message: transfer
    args:
      to: "0xb000000000000000000000000000000000000000000000000000000000000000"
      class_id: 7
      token_id: 0
      quantity: 1
  - message: transfer
    args:
      to: "0xb000000000000000000000000000000000000000000000000000000000000000"
      class_id: 7
      token_id: 0
      quantity: 10
    expect: revert
  - message: update
  - message: tokens
    args: {class_id: 7, token_id: 0}
`

// RunnerSuite drives scenarios through the native executor.
type RunnerSuite struct {
	suite.Suite
	runner *Runner
	ctx    context.Context
}

func (s *RunnerSuite) SetupTest() {
	s.ctx = context.Background()
	s.runner = NewRunner()
}

func (s *RunnerSuite) TestScenarioPasses() {
	report, err := s.runner.Run(s.ctx, []byte(mintScenario), NativeFactory())
	s.Require().NoError(err)

	s.True(report.Passed)
	s.Equal("create, mint and transfer", report.Scenario)
	s.Require().Len(report.Steps, 6)

	s.Equal(OutcomeSuccess, report.Steps[0].Outcome)
	s.Len(report.Steps[0].Result.Events, 1)
	s.Equal("0x00", report.Steps[0].Output)

	s.Equal(OutcomeRevert, report.Steps[3].Outcome)
	s.Equal("0x0100", report.Steps[3].Output)

	s.Len(report.Steps[4].Result.Events, 1)
	s.NotEmpty(report.Steps[5].Output)
}

func (s *RunnerSuite) TestFailedExpectation() {
	scenario := `
name: wrong expectation
steps:
  - message: update
    expect: revert
`
	report, err := s.runner.Run(s.ctx, []byte(scenario), NativeFactory())
	s.Require().NoError(err)

	s.False(report.Passed)
	s.Equal(OutcomeSuccess, report.Steps[0].Outcome)
	s.Equal(OutcomeRevert, report.Steps[0].Expect)
}

func (s *RunnerSuite) TestFailFuncsFixture() {
	scenario := `
name: randomness down
host:
  fail_funcs: [2001]
steps:
  - message: update
    expect: revert
  - message: get
`
	report, err := s.runner.Run(s.ctx, []byte(scenario), NativeFactory())
	s.Require().NoError(err)
	s.True(report.Passed)
	s.Equal("0x"+zeros(32), report.Steps[1].Output)
}

func (s *RunnerSuite) TestStepCallerOverride() {
	scenario := `
name: bob mints
host:
  classes:
    - id: 1
steps:
  - message: mint_nft
    caller: "0xb000000000000000000000000000000000000000000000000000000000000000"
    args: {class_id: 1, quantity: 1}
`
	var host *exttest.Host
	factory := func(ctx context.Context, h *exttest.Host, env *exttest.Environment) (ports.ContractExecutor, error) {
		host = h
		return NewNative(h, env), nil
	}
	report, err := s.runner.Run(s.ctx, []byte(scenario), factory)
	s.Require().NoError(err)
	s.True(report.Passed)
	s.Equal(uint64(1), uint64(host.Ledger().Balance(1, 0, bob)))
}

func (s *RunnerSuite) TestArgValidation() {
	scenario := `
name: zero quantity
steps:
  - message: transfer
    args: {quantity: 0}
    expect: revert
`
	report, err := s.runner.Run(s.ctx, []byte(scenario), NativeFactory())
	s.Require().NoError(err)
	s.True(report.Passed, "the contract rejects the arguments itself")

	strict := NewRunner(WithArgValidation(true))
	_, err = strict.Run(s.ctx, []byte(scenario), NativeFactory())
	s.Require().Error(err)
	s.Contains(err.Error(), "step 1 (transfer)")
}

func (s *RunnerSuite) TestBrokenScenarios() {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{name: "unknown message", yaml: "name: x\nsteps:\n  - message: burn", want: `unknown message "burn"`},
		{name: "invalid file", yaml: "name: x", want: "invalid scenario"},
		{name: "duplicate class", yaml: "name: x\nhost:\n  classes: [{id: 1}, {id: 1}]\nsteps:\n  - message: get", want: "failed to seed host"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.runner.Run(s.ctx, []byte(tt.yaml), NativeFactory())
			s.Require().Error(err)
			s.Contains(err.Error(), tt.want)
		})
	}
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerSuite))
}

func zeros(n int) string {
	out := make([]byte, 2*n)
	for i := range out {
		out[i] = '0'
	}
	return string(out)
}
