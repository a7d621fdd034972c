// Package hostfuncs provides the host side of the NFTMart chain extension: an immutable
// registry of extension handlers keyed by function id, typed SCALE handlers, middleware
// and bundles. It has no WASM runtime dependency and can back any sandbox or test host.
package hostfuncs
