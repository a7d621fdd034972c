// Package extension is the guest-side chain extension dispatcher.
//
// Each operation of the NFTMart extension is bound to a fixed function id, an argument
// tuple, a result shape and a status handling mode. Catalogue holds that closed table.
// Extension is the typed client: it encodes arguments, performs the raw call through a
// ports.ChainExtension, translates the status code and decodes the result.
//
// Fallible operations (fetch_random, create_class, proxy_mint, transfer) map status 0 to
// success and status 1 to errors.ErrFail. Any other status, and any output that does not
// decode to the declared shape, panics with *errors.ProtocolViolation. Queries (tokens,
// sr25519_verify) ignore the status entirely and carry absence in-band.
package extension
