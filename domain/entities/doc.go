// Package entities defines the value types exchanged across the contract/host boundary.
// Each type carries its own SCALE encoding so that argument tuples and results can be
// composed field by field in the order the host expects.
package entities
