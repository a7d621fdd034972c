// Package ports defines the interfaces between contract logic and the host.
// Contract code depends on these abstractions; the wasip1 adapters, the in-memory
// test doubles and the sandbox implement them.
package ports
