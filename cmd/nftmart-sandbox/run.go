package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nftmart-dev/nftmart-contract-sdk/domain/ports"
	"github.com/nftmart-dev/nftmart-contract-sdk/extension"
	"github.com/nftmart-dev/nftmart-contract-sdk/exttest"
	"github.com/nftmart-dev/nftmart-contract-sdk/hostfuncs"
	"github.com/nftmart-dev/nftmart-contract-sdk/sandbox"
)

type runFlags struct {
	wasm         string
	output       string
	validateArgs bool
	legacy       bool
}

func newRunCmd(a *app) *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Deploy the contract and run a scenario against it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read scenario: %w", err)
			}

			hostOpts := []exttest.HostOption{
				exttest.WithMiddleware(
					a.metrics.Middleware(),
					hostfuncs.LoggingMiddleware(a.logger),
				),
			}
			if f.legacy {
				hostOpts = append(hostOpts, exttest.WithLegacyCreateClass())
			}

			factory, err := f.factory(a, cmd)
			if err != nil {
				return err
			}

			runner := sandbox.NewRunner(
				sandbox.WithRunnerLogger(a.logger),
				sandbox.WithHostOptions(hostOpts...),
				sandbox.WithArgValidation(f.validateArgs),
			)
			report, err := runner.Run(cmd.Context(), raw, factory)
			if err != nil {
				return err
			}
			if err := printReport(cmd, report, f.output); err != nil {
				return err
			}
			if !report.Passed {
				return fmt.Errorf("scenario %q failed", report.Scenario)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&f.wasm, "wasm", "", "contract built with GOOS=wasip1 -buildmode=c-shared; in-process contract if empty")
	cmd.Flags().StringVarP(&f.output, "output", "o", "text", "report format: text|json")
	cmd.Flags().BoolVar(&f.validateArgs, "validate-args", false, "reject invalid step arguments before calling the contract")
	cmd.Flags().BoolVar(&f.legacy, "legacy-create-class", false, "use the four-field create_class encoding")
	return cmd
}

func (f runFlags) factory(a *app, cmd *cobra.Command) (sandbox.ExecutorFactory, error) {
	opts := []sandbox.Option{sandbox.WithLogger(a.logger)}
	if f.wasm == "" {
		if f.legacy {
			return func(ctx context.Context, host *exttest.Host, env *exttest.Environment) (ports.ContractExecutor, error) {
				return sandbox.NewNative(host, env, opts...).WithExtensionOptions(extension.WithLegacyCreateClass()), nil
			}, nil
		}
		return sandbox.NativeFactory(opts...), nil
	}

	wasmBytes, err := os.ReadFile(f.wasm)
	if err != nil {
		return nil, fmt.Errorf("failed to read contract: %w", err)
	}
	opts = append(opts, sandbox.WithStderr(cmd.ErrOrStderr()))
	return sandbox.WasmFactory(wasmBytes, opts...), nil
}

func printReport(cmd *cobra.Command, report *sandbox.Report, format string) error {
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "text":
		fmt.Fprintf(out, "scenario: %s\n", report.Scenario)
		for i, step := range report.Steps {
			mark := "ok"
			if !step.Passed {
				mark = "FAIL"
			}
			fmt.Fprintf(out, "%4d %-4s %-26s %-7s (expected %s)", i+1, mark, step.Message, step.Outcome, step.Expect)
			if step.Output != "" {
				fmt.Fprintf(out, " output=%s", step.Output)
			}
			if step.Result.Error != nil {
				fmt.Fprintf(out, " error=%q", step.Result.Error.Message)
			}
			fmt.Fprintln(out)
		}
		status := "passed"
		if !report.Passed {
			status = "failed"
		}
		fmt.Fprintf(out, "%s\n", status)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
