// Package wireformat defines the binary wire format exchanged between the contract and the
// chain extension host. Every argument list and result shape is SCALE-encoded field by field
// in declaration order. These types must remain stable since exact bytes matter for host
// compatibility.
package wireformat
