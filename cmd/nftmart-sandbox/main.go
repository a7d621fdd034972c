// Command nftmart-sandbox runs the demonstration contract off-chain.
//
//	nftmart-sandbox run scenario.yaml                      # in-process contract
//	nftmart-sandbox run --wasm nftmart-demo.wasm scenario.yaml
//	nftmart-sandbox metadata
//	nftmart-sandbox encode transfer '{"to":"0x..","class_id":1,"token_id":0,"quantity":1}'
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
