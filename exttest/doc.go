// Package exttest provides an in-memory contract Environment and a programmable NFTMart
// extension host for tests and the off-chain sandbox.
//
// The Host keeps a small class and token ledger, answers every extension function through
// a hostfuncs registry, produces deterministic randomness and records every call it
// receives so tests can assert on ordering.
package exttest
