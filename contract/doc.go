// Package contract implements ContractDemo, a thin contract on top of the NFTMart chain
// extension.
//
// The contract stores a single 32-byte value and exposes the messages tokens, create_class,
// create_class_with_royalty, mint_nft, transfer, transfer_all, update and get. Messages are
// addressed by 4-byte selectors and take SCALE-encoded arguments; see Dispatch and Deploy.
//
// Fallible messages return errors.ErrFail unchanged from the extension. Through Dispatch an
// Err result sets the revert flag so the host discards the call's state changes.
package contract
