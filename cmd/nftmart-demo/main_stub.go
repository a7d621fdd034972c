//go:build !wasip1

// Command nftmart-demo is the demonstration contract. It only does something when built
// for GOOS=wasip1; natively, use nftmart-sandbox run --native.
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "nftmart-demo must be built with GOOS=wasip1 GOARCH=wasm -buildmode=c-shared")
	os.Exit(1)
}
