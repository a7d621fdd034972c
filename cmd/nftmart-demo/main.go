//go:build wasip1

// Command nftmart-demo is the demonstration contract built for a seal0 host.
//
// Build:
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o nftmart-demo.wasm ./cmd/nftmart-demo
//
// Run a scenario against it:
//
//	nftmart-sandbox run --wasm nftmart-demo.wasm scenario.yaml
package main

import (
	"context"
	"log/slog"

	"github.com/nftmart-dev/nftmart-contract-sdk/contract"
	"github.com/nftmart-dev/nftmart-contract-sdk/domain/ports"
	"github.com/nftmart-dev/nftmart-contract-sdk/extension"
	"github.com/nftmart-dev/nftmart-contract-sdk/infrastructure/wasm"
)

func main() {}

//go:wasmexport deploy
func deploy() {
	run("deploy", contract.Instantiate)
}

//go:wasmexport call
func call() {
	run("call", contract.Call)
}

type entryPoint func(context.Context, ports.Environment, *extension.Extension) error

// run executes an entry point. A successful entry point never returns here because
// seal_return unwinds the instance; an error traps it.
func run(name string, entry entryPoint) {
	ctx := context.Background()
	env := wasm.NewEnvironmentAdapter()
	ext := extension.New(wasm.NewChainExtensionAdapter())
	if err := entry(ctx, env, ext); err != nil {
		slog.ErrorContext(ctx, "contract entry point failed", slog.String("entry", name), slog.String("error", err.Error()))
		panic(err)
	}
}
