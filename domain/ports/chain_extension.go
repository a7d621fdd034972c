package ports

// ChainExtension is the raw guest-to-host extension channel.
//
// Call hands the SCALE-encoded argument tuple to the host under funcID and returns the
// host's status code and its SCALE-encoded output buffer. The call is synchronous and
// cannot fail at the transport level: a broken host traps the whole contract instead.
type ChainExtension interface {
	Call(funcID uint32, input []byte) (status uint32, output []byte)
}

// ChainExtensionFunc adapts a function to ChainExtension.
type ChainExtensionFunc func(funcID uint32, input []byte) (uint32, []byte)

// Call implements ChainExtension.
func (f ChainExtensionFunc) Call(funcID uint32, input []byte) (uint32, []byte) {
	return f(funcID, input)
}
